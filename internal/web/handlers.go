package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/logging"
	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/rsp"
	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/source"
)

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// AveragesResponse carries a finished monthly series plus the strings the
// chart needs to render it.
type AveragesResponse struct {
	City     string            `json:"city"`
	FuelType string            `json:"fuelType"`
	Year     int               `json:"year"`
	Title    string            `json:"title"`
	Labels   [12]string        `json:"labels"`
	Series   rsp.MonthlySeries `json:"series"`
	Fallback bool              `json:"fallback"`
}

// handleIndex serves the chart page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "chart page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleAverages returns the 12-month average series for a selection.
//
// This endpoint sits directly behind the UI dropdowns and never fails on
// selection input: an unknown city, a fuel outside the enum, or an
// unparseable year all yield a 200 with an all-zero series, which the
// chart renders as an empty state.
func (s *Server) handleAverages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city := strings.TrimSpace(q.Get("city"))
	fuel := rsp.FuelType(strings.ToLower(strings.TrimSpace(q.Get("fuel"))))
	year, _ := strconv.Atoi(q.Get("year")) // invalid input degrades to 0, never errors

	snap := s.store.Current()
	series := rsp.MonthlyAverages(snap.Dataset, city, fuel, year)

	writeJSON(w, r, AveragesResponse{
		City:     city,
		FuelType: string(fuel),
		Year:     year,
		Title:    fmt.Sprintf("Average %s RSP in %s, %d", fuel, city, year),
		Labels:   monthLabels,
		Series:   series,
		Fallback: snap.Fallback,
	})
}

// handleCities returns the distinct cities in the current snapshot.
func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, rsp.Cities(s.store.Current().Dataset))
}

// handleYears returns the distinct years in the current snapshot.
func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, rsp.Years(s.store.Current().Dataset))
}

// StatsResponse exposes load and skip counters for operators, including
// whether the current snapshot is the synthetic fallback.
type StatsResponse struct {
	Snapshot source.SnapshotInfo `json:"snapshot"`
	Counters source.Counters     `json:"counters"`
}

// handleStats returns observability counters for the current snapshot.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	writeJSON(w, r, StatsResponse{
		Snapshot: snap.Info(),
		Counters: s.store.Counters(),
	})
}

// handleReload re-runs the load cycle and replaces the snapshot wholesale.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap := s.loader.Load(r.Context())
	s.store.Replace(snap)

	logging.FromContext(r.Context()).Info("dataset reloaded",
		"load_id", snap.LoadID,
		"rows", len(snap.Dataset),
		"fallback", snap.Fallback,
	)
	writeJSON(w, r, snap.Info())
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"status": "ok"})
}
