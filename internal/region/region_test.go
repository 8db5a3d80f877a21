package region

import "testing"

func TestAssign(t *testing.T) {
	tests := []struct {
		postcode string
		want     Region
	}{
		{"NE23 6XX", Northumberland},
		{"ne1", Northumberland},
		{"YO1 7HH", Yorkshire},
		{"N1 9GU", London},
		{"nw3", London},
		{"E14 5AB", London},
		{"EC1A 1BB", London},
		{"M1 1AE", Manchester},
		{"  m60 ", Manchester},
		{"LS1 1UR", Unassigned},
		{"SW1A 1AA", Unassigned},
		{"", Unassigned},
		{"   ", Unassigned},
	}

	for _, tt := range tests {
		t.Run(tt.postcode, func(t *testing.T) {
			got := Assign(tt.postcode)
			if got != tt.want {
				t.Errorf("Assign(%q) = %+v, want %+v", tt.postcode, got, tt.want)
			}
		})
	}
}

func TestUnassigned(t *testing.T) {
	r := Assign("zz")
	if r.Assigned() {
		t.Error("Assigned() = true for unmatched postcode")
	}
	if r.Label != "your region" {
		t.Errorf("Label = %q, want %q", r.Label, "your region")
	}
	if r.Coordinates.Latitude != 54.5 || r.Coordinates.Longitude != -1.5 {
		t.Errorf("Coordinates = %+v, want fallback", r.Coordinates)
	}
	if !Assign("ne1").Assigned() {
		t.Error("Assigned() = false for a matched postcode")
	}
}
