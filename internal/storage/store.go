package storage

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

const (
	metadataFile = "metadata.json"
	dataFile     = "data.csv"
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
	Model     string             `json:"model"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed,omitempty"`
	Params    map[string]float64 `json:"params"`
	Labels    map[string]string  `json:"labels,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
	Rows      int                `json:"rows"`
	Columns   int                `json:"columns"`
}

// Table is a named-column numeric grid, stored as CSV.
type Table struct {
	Header []string
	Rows   [][]float64
}

// Save writes metadata and data into a fresh run directory. ID and
// Timestamp are filled in on meta.
func (s *Store) Save(meta RunMetadata, table *Table) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Model, now.UnixNano())
	meta.Timestamp = now
	meta.Rows = len(table.Rows)
	meta.Columns = len(table.Header)

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, dataFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, table); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// List returns every readable run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadTable(runID string) (*Table, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, dataFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	table := &Table{
		Header: records[0],
		Rows:   make([][]float64, 0, len(records)-1),
	}
	for i := 1; i < len(records); i++ {
		row := make([]float64, len(records[i]))
		for j, field := range records[i] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %d: %w", dataFile, i, j, err)
			}
			row[j] = v
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
