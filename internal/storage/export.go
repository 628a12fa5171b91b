package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/fluidscene/internal/sim"
)

type ExportData struct {
	RunMetadata
	TotalDensity []float64 `json:"total_density"`
	MaxSpeed     []float64 `json:"max_speed"`
}

// ExportJSON writes run metadata and its series as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, result *sim.Result) error {
	data := ExportData{
		RunMetadata:  meta,
		TotalDensity: result.TotalDensity,
		MaxSpeed:     result.MaxSpeed,
	}
	data.Ticks = result.Ticks
	data.Metrics = result.Metrics

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
