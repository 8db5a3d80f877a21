package postcodes_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tech-for-trees/internal/providers/postcodes"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Lookup_Success(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":200,"result":{"postcode":"NE23 6XX","latitude":55.0,"longitude":-1.5}}`)
	}))
	defer ts.Close()

	cl := postcodes.NewClient(discardLogger(), postcodes.WithBaseURL(ts.URL))
	resp, err := cl.Lookup(context.Background(), "ne23 6xx")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotPath != "/postcodes/ne23%206xx" {
		t.Errorf("request path = %q, want %q", gotPath, "/postcodes/ne23%206xx")
	}
	coords := resp.Coordinates()
	if coords.Latitude != 55.0 || coords.Longitude != -1.5 {
		t.Errorf("Coordinates() = %+v, want (55.0, -1.5)", coords)
	}
}

func TestClient_Lookup_EscapesPostcode(t *testing.T) {
	tests := []struct {
		postcode string
		wantPath string
	}{
		{postcode: "ne23 6xx", wantPath: "/postcodes/ne23%206xx"},
		{postcode: "../random/postcodes", wantPath: "/postcodes/..%2Frandom%2Fpostcodes"},
		{postcode: "ne1/x", wantPath: "/postcodes/ne1%2Fx"},
		{postcode: "ne1?x=1", wantPath: "/postcodes/ne1%3Fx=1"},
	}

	for _, tt := range tests {
		t.Run(tt.postcode, func(t *testing.T) {
			var gotPath string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				w.WriteHeader(http.StatusNotFound)
				_, _ = io.WriteString(w, `{"status":404,"error":"Invalid postcode"}`)
			}))
			defer ts.Close()

			cl := postcodes.NewClient(discardLogger(), postcodes.WithBaseURL(ts.URL))
			_, err := cl.Lookup(context.Background(), tt.postcode)
			if !errors.Is(err, postcodes.ErrNotFound) {
				t.Errorf("err = %v, want ErrNotFound", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("request path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestClient_Lookup_RejectsDotSegments(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	cl := postcodes.NewClient(discardLogger(), postcodes.WithBaseURL(ts.URL))
	for _, pc := range []string{"", ".", ".."} {
		if _, err := cl.Lookup(context.Background(), pc); !errors.Is(err, postcodes.ErrInvalidPostcode) {
			t.Errorf("Lookup(%q) err = %v, want ErrInvalidPostcode", pc, err)
		}
	}
	if calls != 0 {
		t.Errorf("upstream called %d times, want 0", calls)
	}
}

func TestClient_Lookup_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"status":404,"error":"Postcode not found"}`, wantErr: postcodes.ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "malformed json", status: http.StatusOK, body: `{"status":200,"result":`},
		{name: "envelope status not ok", status: http.StatusOK, body: `{"status":500,"error":"busy"}`},
		{name: "missing result", status: http.StatusOK, body: `{"status":200}`, wantErr: postcodes.ErrMissingResult},
		{name: "missing longitude", status: http.StatusOK, body: `{"status":200,"result":{"latitude":55.0}}`, wantErr: postcodes.ErrMissingCoordinates},
		{name: "null coordinates", status: http.StatusOK, body: `{"status":200,"result":{"latitude":null,"longitude":null}}`, wantErr: postcodes.ErrMissingCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer ts.Close()

			cl := postcodes.NewClient(discardLogger(), postcodes.WithBaseURL(ts.URL))
			resp, err := cl.Lookup(context.Background(), "ne23")
			if err == nil {
				t.Fatalf("expected error, got response %+v", resp)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_Lookup_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	cl := postcodes.NewClient(discardLogger(),
		postcodes.WithBaseURL(ts.URL),
		postcodes.WithTimeout(50*time.Millisecond),
	)

	start := time.Now()
	_, err := cl.Lookup(context.Background(), "ne23")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Lookup took %v, timeout was not applied", elapsed)
	}
}
