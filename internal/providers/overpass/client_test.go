package overpass_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tech-for-trees/internal/providers/overpass"
	"tech-for-trees/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Interpret_Success(t *testing.T) {
	var gotMethod, gotContentType, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotQuery = r.PostForm.Get("data")
		_, _ = io.WriteString(w, `{
			"version": 0.6,
			"elements": [
				{"type":"node","id":1,"lat":55.01,"lon":-1.51,"tags":{"name":"Node School"}},
				{"type":"way","id":2,"center":{"lat":55.02,"lon":-1.52},"tags":{"amenity":"school"}},
				{"type":"relation","id":3}
			]
		}`)
	}))
	defer ts.Close()

	cl := overpass.NewClient(discardLogger(), overpass.WithURL(ts.URL), overpass.WithUserAgent("test"))
	query := overpass.BuildAroundQuery("amenity=school", 8046, types.NewCoords(55, -1.5))

	resp, err := cl.Interpret(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotQuery != query {
		t.Errorf("query = %q, want %q", gotQuery, query)
	}
	if len(resp.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(resp.Elements))
	}

	pos, ok := resp.Elements[0].Position()
	if !ok || pos.Latitude != 55.01 || pos.Longitude != -1.51 {
		t.Errorf("node position = %+v, %v", pos, ok)
	}
	pos, ok = resp.Elements[1].Position()
	if !ok || pos.Latitude != 55.02 || pos.Longitude != -1.52 {
		t.Errorf("way center position = %+v, %v", pos, ok)
	}
	if _, ok := resp.Elements[2].Position(); ok {
		t.Error("relation without center should have no position")
	}
	if name, ok := resp.Elements[0].Tag("name"); !ok || name != "Node School" {
		t.Errorf("Tag(name) = %q, %v", name, ok)
	}
	if _, ok := resp.Elements[2].Tag("name"); ok {
		t.Error("Tag on element without tags should report missing")
	}
}

func TestClient_Interpret_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"too many requests", http.StatusTooManyRequests, "rate limited"},
		{"gateway timeout", http.StatusGatewayTimeout, "<html>timeout</html>"},
		{"malformed json", http.StatusOK, `{"elements": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer ts.Close()

			cl := overpass.NewClient(discardLogger(), overpass.WithURL(ts.URL))
			if _, err := cl.Interpret(context.Background(), "[out:json];"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestClient_Interpret_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.URL
	ts.Close()

	cl := overpass.NewClient(discardLogger(), overpass.WithURL(addr))
	_, err := cl.Interpret(context.Background(), "[out:json];")
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if !strings.Contains(err.Error(), "failed to fetch") {
		t.Errorf("error = %v, want it to mention the fetch failure", err)
	}
}

func TestBuildAroundQuery(t *testing.T) {
	got := overpass.BuildAroundQuery("shop=supermarket", 8046, types.NewCoords(54.5, -1.5))
	want := `[out:json];
(
  node[shop=supermarket](around:8046,54.5,-1.5);
  way[shop=supermarket](around:8046,54.5,-1.5);
  relation[shop=supermarket](around:8046,54.5,-1.5);
);
out center;
`
	if got != want {
		t.Errorf("BuildAroundQuery() =\n%s\nwant\n%s", got, want)
	}
}
