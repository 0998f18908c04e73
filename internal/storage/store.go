package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/experiment"
)

var ErrNoSeries = errors.New("stellar: run has no series")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Label     string             `json:"label"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Ticks     int                `json:"ticks"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
	Config    config.Config      `json:"config"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and series.csv under a fresh run directory
// and returns the run id.
func (s *Store) Save(label string, cfg config.Config, result *experiment.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", label, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("create run dir: %w", err)
	}

	meta := RunMetadata{
		ID:        runID,
		Label:     label,
		Timestamp: now,
		Seed:      cfg.Seed,
		Ticks:     result.Ticks,
		Elapsed:   result.Duration,
		Config:    cfg,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := writeSeries(w, result); err != nil {
		return "", fmt.Errorf("write series: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("write series: %w", err)
	}

	return runID, nil
}

func seriesColumns(series map[string][]float64) []string {
	cols := make([]string, 0, len(series))
	for _, name := range experiment.SeriesNames {
		if _, ok := series[name]; ok {
			cols = append(cols, name)
		}
	}
	var extra []string
	for name := range series {
		known := false
		for _, c := range cols {
			if c == name {
				known = true
				break
			}
		}
		if !known {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(cols, extra...)
}

func writeSeries(w *csv.Writer, result *experiment.Result) error {
	cols := seriesColumns(result.Series)
	if err := w.Write(append([]string{"tick"}, cols...)); err != nil {
		return err
	}

	for i := 0; i < result.Ticks; i++ {
		row := []string{strconv.Itoa(i + 1)}
		for _, name := range cols {
			vals := result.Series[name]
			if i < len(vals) {
				row = append(row, strconv.FormatFloat(vals[i], 'f', 6, 64))
			} else {
				row = append(row, "0")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns every readable run, oldest first. Directories without
// valid metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSeries reads series.csv back into named columns. Unparsable cells
// read as zero.
func (s *Store) LoadSeries(runID string) (map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse series %s: %w", runID, err)
	}
	if len(records) == 0 {
		return nil, ErrNoSeries
	}

	header := records[0]
	series := make(map[string][]float64, len(header))
	for _, name := range header[1:] {
		series[name] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		for j := 1; j < len(header); j++ {
			var v float64
			if j < len(record) {
				v, _ = strconv.ParseFloat(record[j], 64)
			}
			series[header[j]] = append(series[header[j]], v)
		}
	}
	return series, nil
}
