package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/config"
	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/rsp"
)

const validCSV = "id,oil_company,scheme,date,product,city,price\n" +
	"1,IOCL,RSP,01-06-2023,Petrol,Mumbai,106.31\n" +
	"2,IOCL,RSP,01-06-2023,Diesel,Mumbai,94.27\n"

func testSourceConfig(url string) config.SourceConfig {
	return config.SourceConfig{
		URL:          url,
		FetchTimeout: 5 * time.Second,
		MaxBodySize:  1 << 20,
	}
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(validCSV))
	}))
	defer srv.Close()

	snap := NewLoader(testSourceConfig(srv.URL)).Load(context.Background())

	if snap.Fallback {
		t.Fatal("Fallback = true, want real data")
	}
	if len(snap.Dataset) != 2 {
		t.Fatalf("got %d rows, want 2", len(snap.Dataset))
	}
	if snap.LoadID == "" {
		t.Error("LoadID is empty")
	}
	if snap.Stats.Kept != 2 {
		t.Errorf("Stats.Kept = %d, want 2", snap.Stats.Kept)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsp.csv")
	if err := os.WriteFile(path, []byte(validCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	snap := NewLoader(testSourceConfig(path)).Load(context.Background())

	if snap.Fallback {
		t.Fatal("Fallback = true, want real data")
	}
	if len(snap.Dataset) != 2 {
		t.Fatalf("got %d rows, want 2", len(snap.Dataset))
	}
}

func TestLoadFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusInternalServerError)
			},
		},
		{
			name: "wrong content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.Write([]byte("<html>not a dataset</html>"))
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/csv")
			},
		},
		{
			name: "header-only body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/csv")
				w.Write([]byte("id,oil_company,scheme,date,product,city,price"))
			},
		},
		{
			name: "no valid rows",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/csv")
				w.Write([]byte("id,oil_company,scheme,date,product,city,price\n1,IOCL,RSP,01-06-2023,LPG,Mumbai,55.5\n"))
			},
		},
	}

	wantRows := len(rsp.GenerateFallbackDataset())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			snap := NewLoader(testSourceConfig(srv.URL)).Load(context.Background())

			if !snap.Fallback {
				t.Fatal("Fallback = false, want fallback dataset")
			}
			if len(snap.Dataset) != wantRows {
				t.Errorf("got %d rows, want fallback shape %d", len(snap.Dataset), wantRows)
			}
		})
	}
}

func TestLoadFallsBackOnMissingFile(t *testing.T) {
	snap := NewLoader(testSourceConfig(filepath.Join(t.TempDir(), "missing.csv"))).Load(context.Background())
	if !snap.Fallback {
		t.Fatal("Fallback = false, want fallback for missing file")
	}
}

func TestStoreReplaceWholesale(t *testing.T) {
	store := NewStore()

	first := Snapshot{LoadID: "a", Dataset: rsp.Dataset{{City: "Mumbai", FuelType: rsp.FuelPetrol, Year: 2023, Month: 1, Price: 100}}}
	second := Snapshot{LoadID: "b", Dataset: rsp.Dataset{{City: "Delhi", FuelType: rsp.FuelDiesel, Year: 2022, Month: 2, Price: 90}}, Fallback: true}

	store.Replace(first)
	if got := store.Current(); got.LoadID != "a" || len(got.Dataset) != 1 {
		t.Fatalf("Current = %+v, want first snapshot", got)
	}

	store.Replace(second)
	got := store.Current()
	if got.LoadID != "b" {
		t.Fatalf("Current.LoadID = %q, want b", got.LoadID)
	}
	if got.Dataset[0].City != "Delhi" {
		t.Errorf("old dataset leaked into new snapshot: %+v", got.Dataset)
	}

	counters := store.Counters()
	if counters.Loads != 2 || counters.Fallbacks != 1 {
		t.Errorf("Counters = %+v, want 2 loads, 1 fallback", counters)
	}
}
