package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/fluidscene/internal/sim"
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
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	Ticks     int                `json:"ticks"`
	Dt        float64            `json:"dt"`
	Policy    string             `json:"policy"`
	Rows      int                `json:"rows"`
	Cols      int                `json:"cols"`
	Colormap  string             `json:"colormap"`
	Quiver    string             `json:"quiver"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and series.csv under a new run directory and
// returns the run id. ID, Timestamp and Metrics of meta are filled in.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Scene, now.Unix())
	meta.Timestamp = now
	meta.Ticks = result.Ticks
	meta.Metrics = result.Metrics

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

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

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"tick", "total_density", "max_speed"}); err != nil {
		return "", err
	}
	for i := range result.TotalDensity {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(result.TotalDensity[i], 'f', 6, 64),
			strconv.FormatFloat(result.MaxSpeed[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

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

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads the per-tick total density and max speed of a run.
func (s *Store) LoadSeries(runID string) (totals, speeds []float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	totals = make([]float64, 0, len(records))
	speeds = make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		total, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		speed, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		totals = append(totals, total)
		speeds = append(speeds, speed)
	}

	return totals, speeds, nil
}
