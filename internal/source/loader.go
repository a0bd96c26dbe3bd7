// Package source acquires the raw RSP dataset and applies the fallback
// policy: any transport or structural failure is absorbed by substituting
// a synthetic dataset, so downstream consumers always receive a
// well-formed, filterable snapshot. The tradeoff is availability over
// correctness signaling; fallback use is surfaced through logs and the
// store's counters rather than errors.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/config"
	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/logging"
	"github.com/VaibhavChaudhary3108/RSP-Data-Visualization-App/internal/rsp"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Content types accepted from an HTTP dataset source. Anything else is a
// transport error and triggers the fallback.
var acceptedContentTypes = []string{"text/csv", "text/plain", "application/csv", "application/octet-stream"}

// Snapshot is one fully-loaded dataset plus its load metadata. Snapshots
// are immutable; a reload produces a new Snapshot that replaces the old
// one wholesale.
type Snapshot struct {
	LoadID   string         `json:"loadId"`
	Dataset  rsp.Dataset    `json:"-"`
	Stats    rsp.ParseStats `json:"stats"`
	Fallback bool           `json:"fallback"`
	LoadedAt time.Time      `json:"loadedAt"`
}

// SnapshotInfo is the JSON-safe summary of a Snapshot, without the rows.
type SnapshotInfo struct {
	LoadID   string         `json:"loadId"`
	Rows     int            `json:"rows"`
	Stats    rsp.ParseStats `json:"stats"`
	Fallback bool           `json:"fallback"`
	LoadedAt time.Time      `json:"loadedAt"`
}

// Info summarizes the snapshot for API responses and logs.
func (s Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{
		LoadID:   s.LoadID,
		Rows:     len(s.Dataset),
		Stats:    s.Stats,
		Fallback: s.Fallback,
		LoadedAt: s.LoadedAt,
	}
}

// Loader fetches and parses the raw dataset from an HTTP URL or a local
// file path.
type Loader struct {
	cfg    config.SourceConfig
	client *http.Client
}

// NewLoader creates a Loader for the configured source.
func NewLoader(cfg config.SourceConfig) *Loader {
	return &Loader{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.FetchTimeout,
		},
	}
}

// Load performs one load cycle and never fails: on any fetch or parse
// error it logs the cause and substitutes the synthetic fallback dataset.
// Each cycle gets a load ID that tags all its log entries.
func (l *Loader) Load(ctx context.Context) Snapshot {
	loadID := uuid.NewString()
	logger := logging.WithFields(ctx, "load_id", loadID, "source", l.cfg.URL)

	raw, err := l.fetch(ctx)
	if err == nil {
		ds, stats, perr := rsp.ParseDataset(raw)
		if perr == nil {
			logger.Info("dataset loaded",
				"size", humanize.Bytes(uint64(len(raw))),
				"rows_kept", stats.Kept,
				"rows_skipped", stats.Skipped,
			)
			if stats.Skipped > 0 {
				logger.Warn("rows skipped during parse", "skipped", stats.Skipped, "data_rows", stats.DataRows)
			}
			return Snapshot{
				LoadID:   loadID,
				Dataset:  ds,
				Stats:    stats,
				LoadedAt: time.Now(),
			}
		}
		err = perr
	}

	logger.Warn("dataset load failed, using fallback dataset", "error", err)
	ds := rsp.GenerateFallbackDataset()
	return Snapshot{
		LoadID:   loadID,
		Dataset:  ds,
		Stats:    rsp.ParseStats{Kept: len(ds)},
		Fallback: true,
		LoadedAt: time.Now(),
	}
}

// fetch reads the raw dataset text. HTTP(S) URLs are fetched with status,
// content-type, and body checks; anything else is treated as a local
// file path.
func (l *Loader) fetch(ctx context.Context) (string, error) {
	if strings.HasPrefix(l.cfg.URL, "http://") || strings.HasPrefix(l.cfg.URL, "https://") {
		return l.fetchHTTP(ctx)
	}
	return l.fetchFile()
}

func (l *Loader) fetchHTTP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.URL, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching dataset: unexpected status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !contentTypeAccepted(contentType) {
		return "", fmt.Errorf("fetching dataset: unexpected content type %q", contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, l.cfg.MaxBodySize))
	if err != nil {
		return "", fmt.Errorf("reading dataset body: %w", err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("fetching dataset: empty body")
	}

	return string(body), nil
}

func (l *Loader) fetchFile() (string, error) {
	data, err := os.ReadFile(l.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("reading dataset file: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("dataset file is empty")
	}
	return string(data), nil
}

func contentTypeAccepted(ct string) bool {
	for _, accepted := range acceptedContentTypes {
		if strings.HasPrefix(ct, accepted) {
			return true
		}
	}
	return false
}
