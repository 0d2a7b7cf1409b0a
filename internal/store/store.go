// Package store persists recorded demo runs for offline plotting and
// export. Each run is a directory holding metadata.json and
// samples.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

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
	Demo      string             `json:"demo"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	FPS       int                `json:"fps"`
	Duration  float64            `json:"duration"`
	Params    map[string]float64 `json:"params"`
	Metrics   map[string]float64 `json:"metrics"`
	Labels    []string           `json:"labels"`
}

// Save writes a recorded run and returns its id.
func (s *Store) Save(meta RunMetadata, rec *Recorder) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Demo, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Labels = rec.Labels()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.saveSamples(runDir, rec); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) saveSamples(runDir string, rec *Recorder) error {
	f, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := append([]string{"t"}, rec.Labels()...)
	if err := w.Write(header); err != nil {
		return err
	}

	times, rows := rec.Samples()
	record := make([]string, len(header))
	for i, row := range rows {
		record[0] = strconv.FormatFloat(times[i], 'f', 6, 64)
		for j, v := range row {
			record[j+1] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip corrupt run dirs
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (RunMetadata, error) {
	var meta RunMetadata

	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, fmt.Errorf("run %s: %w", runID, err)
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("run %s: %w", runID, err)
	}
	return meta, nil
}

// LoadSamples reads back a run's time series.
func (s *Store) LoadSamples(runID string) (times []float64, rows [][]float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("run %s: %w", runID, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 1 {
		return nil, nil, nil
	}

	for _, rec := range records[1:] { // skip header
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, err
		}
		row := make([]float64, len(rec)-1)
		for j, cell := range rec[1:] {
			if row[j], err = strconv.ParseFloat(cell, 64); err != nil {
				return nil, nil, err
			}
		}
		times = append(times, t)
		rows = append(rows, row)
	}
	return times, rows, nil
}
