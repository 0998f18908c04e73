package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Run    RunMetadata          `json:"run"`
	Series map[string][]float64 `json:"series"`
}

// ExportJSON writes a stored run, metadata and series together, as
// indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: *meta, Series: series})
}
