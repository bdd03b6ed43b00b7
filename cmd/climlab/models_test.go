package main

import (
	"context"
	"testing"

	"github.com/go-kit/log"

	"github.com/san-kum/climlab/internal/forest"
	"github.com/san-kum/climlab/internal/storage"
)

func TestForestEnsembleIsStored(t *testing.T) {
	logger = log.NewNopLogger()
	dataDir = t.TempDir()
	noSave = false
	t.Cleanup(func() { noSave = false })

	fc := forest.Config{Mode: forest.Fire, ISize: 5, JSize: 5, NStep: 6, PSpread: 0.5, Seed: 7}
	if err := runForestEnsemble(context.Background(), fc, 3); err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}

	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 stored run, got %d", len(runs))
	}
	meta := runs[0]
	if meta.Model != "forest" || meta.Labels["kind"] != "ensemble" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Params["runs"] != 3 || meta.Rows != 3 {
		t.Errorf("expected 3 runs in %d rows, got params %v", meta.Rows, meta.Params)
	}

	table, err := st.LoadTable(meta.ID)
	if err != nil {
		t.Fatalf("load table failed: %v", err)
	}
	for i, row := range table.Rows {
		if row[0] != float64(7+i) {
			t.Errorf("row %d: expected seed %d, got %g", i, 7+i, row[0])
		}
	}
}

func TestForestEnsembleNoSave(t *testing.T) {
	logger = log.NewNopLogger()
	dataDir = t.TempDir()
	noSave = true
	t.Cleanup(func() { noSave = false })

	if err := runForestEnsemble(context.Background(), forest.DefaultConfig(), 2); err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	runs, err := storage.New(dataDir).List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected nothing stored with --no-save, got %d runs", len(runs))
	}
}
