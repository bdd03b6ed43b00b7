package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/climlab/internal/heat"
)

func solveTextbook(t *testing.T) *heat.Result {
	t.Helper()
	res, err := heat.Solve(heat.Params{
		XStop: 1, TStop: 0.2, Dx: 0.2, Dt: 0.02, C2: 1,
		Lower: heat.Dirichlet(0), Upper: heat.Dirichlet(0),
	})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	res := solveTextbook(t)
	meta := RunMetadata{
		Model:   "heat",
		Params:  map[string]float64{"dx": 0.2, "dt": 0.02},
		Labels:  map[string]string{"lower": "dirichlet(0)"},
		Metrics: map[string]float64{"peak": 1},
	}

	runID, err := st.Save(meta, FieldTable(res))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Model != "heat" {
		t.Errorf("expected model 'heat', got '%s'", loaded.Model)
	}
	if loaded.Params["dt"] != 0.02 {
		t.Errorf("expected dt 0.02, got %f", loaded.Params["dt"])
	}
	if loaded.Rows != 6 || loaded.Columns != 12 {
		t.Errorf("expected 6x12 table, got %dx%d", loaded.Rows, loaded.Columns)
	}

	table, err := st.LoadTable(runID)
	if err != nil {
		t.Fatalf("load table failed: %v", err)
	}
	for i, row := range table.Rows {
		if !reflect.DeepEqual(row[1:], res.Field[i]) {
			t.Errorf("row %d did not survive the round trip", i)
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	table, err := SeriesTable([]string{"t", "temp"}, []float64{0, 1}, []float64{90, 89})
	if err != nil {
		t.Fatalf("series failed: %v", err)
	}
	for _, model := range []string{"cooling", "heat"} {
		if _, err := st.Save(RunMetadata{Model: model}, table); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Model != "cooling" {
		t.Errorf("expected oldest run first, got %s", runs[0].Model)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(RunMetadata{Model: "heat"}, FieldTable(solveTextbook(t)))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	for _, name := range []string{metadataFile, dataFile} {
		if _, err := os.Stat(filepath.Join(runDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestExportJSON(t *testing.T) {
	table, err := SeriesTable([]string{"x", "y"}, []float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatalf("series failed: %v", err)
	}

	var buf bytes.Buffer
	meta := &RunMetadata{ID: "cooling_1", Model: "cooling"}
	if err := ExportJSON(&buf, meta, table); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Run.ID != "cooling_1" || len(got.Rows) != 2 || got.Rows[1][1] != 4 {
		t.Errorf("unexpected export %+v", got)
	}
}

func TestSeriesTableMismatch(t *testing.T) {
	if _, err := SeriesTable([]string{"a", "b"}, []float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected error for ragged columns")
	}
	if _, err := SeriesTable([]string{"a"}, []float64{1}, []float64{1}); err == nil {
		t.Error("expected error for missing names")
	}
}
