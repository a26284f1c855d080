package customs

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hufschlaeger.net/customs-data-exporter/internal/config"
)

func newRepoWithServer(t *testing.T, handler http.HandlerFunc) (*Repository, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)

	// Build config pointing to our fake server
	cfg := &config.Config{
		APIURL:   srv.URL + "/api/v1/logs",
		APIToken: "test-token",
	}

	repo := NewRepository(cfg)
	return repo, srv
}

func TestFetchRecords_ItemsEnvelope(t *testing.T) {
	repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/logs" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("accept"); got != "application/json" {
			t.Fatalf("missing accept header, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("missing/invalid Authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":"1","country":"US","weight":12.5},
			{"id":"2","country":"DE","weight":null}
		]}`))
	})
	defer srv.Close()

	got, err := repo.FetchRecords()
	if err != nil {
		t.Fatalf("FetchRecords() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	// Feldreihenfolge muss dem Payload entsprechen
	wantFields := []string{"id", "country", "weight"}
	for i, field := range got[0].Fields() {
		if field != wantFields[i] {
			t.Errorf("field[%d] = %q, want %q", i, field, wantFields[i])
		}
	}

	weight, _ := got[0].Get("weight")
	if weight != 12.5 {
		t.Errorf("weight = %v, want 12.5", weight)
	}

	weight, ok := got[1].Get("weight")
	if !ok || weight != nil {
		t.Errorf("null weight = %v, %v; want nil, true", weight, ok)
	}
}

func TestFetchRecords_TopLevelArray(t *testing.T) {
	repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1"},{"id":"2"},{"id":"3"}]`))
	})
	defer srv.Close()

	got, err := repo.FetchRecords()
	if err != nil {
		t.Fatalf("FetchRecords() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
}

func TestFetchRecords_NoTokenNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Fatalf("Authorization header sollte fehlen, got %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	repo := NewRepository(&config.Config{APIURL: srv.URL})

	if _, err := repo.FetchRecords(); err != nil {
		t.Fatalf("FetchRecords() error = %v", err)
	}
}

func TestFetchRecords_ErrorStatus(t *testing.T) {
	repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	})
	defer srv.Close()

	_, err := repo.FetchRecords()
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	if fetchErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", fetchErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error should carry the response body, got: %v", err)
	}
}

func TestFetchRecords_InvalidJSON(t *testing.T) {
	repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`kein json`))
	})
	defer srv.Close()

	_, err := repo.FetchRecords()

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError for invalid JSON, got %T: %v", err, err)
	}
}

func TestFetchRecords_UnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Objekt ohne items", `{"records":[]}`},
		{"items ist kein Array", `{"items":"nope"}`},
		{"Skalar", `42`},
		{"Array mit Nicht-Objekt", `[{"id":"1"},"nope"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			defer srv.Close()

			_, err := repo.FetchRecords()

			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("expected *FetchError, got %T: %v", err, err)
			}
		})
	}
}

func TestFetchRecords_ConnectionRefused(t *testing.T) {
	// Port 9 ist üblicherweise geschlossen
	repo := NewRepository(&config.Config{APIURL: "http://127.0.0.1:9/api/v1/logs"})

	_, err := repo.FetchRecords()

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError for refused connection, got %T: %v", err, err)
	}
	if fetchErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for transport error", fetchErr.StatusCode)
	}
}

func TestFetchRecords_NestedValuesKeptRaw(t *testing.T) {
	repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":"1","details":{"nested":true}}]}`))
	})
	defer srv.Close()

	got, err := repo.FetchRecords()
	if err != nil {
		t.Fatalf("FetchRecords() error = %v", err)
	}

	// Verschachtelte Werte werden erst beim Schreiben beanstandet
	value, ok := got[0].Get("details")
	if !ok {
		t.Fatal("details sollte vorhanden sein")
	}
	if _, isString := value.(string); isString {
		t.Errorf("nested value sollte kein string sein, got %T", value)
	}
}
