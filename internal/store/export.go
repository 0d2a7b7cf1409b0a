package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// ExportData is the flat JSON shape produced by export commands.
type ExportData struct {
	Demo    string             `json:"demo"`
	FPS     int                `json:"fps"`
	Seed    int64              `json:"seed"`
	Steps   int                `json:"steps"`
	Labels  []string           `json:"labels"`
	Times   []float64          `json:"times"`
	Rows    [][]float64        `json:"rows"`
	Params  map[string]float64 `json:"params"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a stored run as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, times []float64, rows [][]float64) error {
	data := ExportData{
		Demo:    meta.Demo,
		FPS:     meta.FPS,
		Seed:    meta.Seed,
		Steps:   len(times),
		Labels:  meta.Labels,
		Times:   times,
		Rows:    rows,
		Params:  meta.Params,
		Metrics: meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a stored run as CSV with a header row.
func ExportCSV(w io.Writer, meta RunMetadata, times []float64, rows [][]float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(append([]string{"t"}, meta.Labels...)); err != nil {
		return err
	}

	for i, row := range rows {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.FormatFloat(times[i], 'f', 6, 64))
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Error()
}
