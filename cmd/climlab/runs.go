package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/san-kum/climlab/internal/report"
	"github.com/san-kum/climlab/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	rows := make([][]string, len(runs))
	for i, run := range runs {
		rows[i] = []string{
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%dx%d", run.Rows, run.Columns),
		}
	}
	fmt.Println(report.StringTable([]string{"ID", "MODEL", "TIME", "SIZE"}, rows))
	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	pairs := []report.Pair{
		report.S("model", meta.Model),
		report.S("time", meta.Timestamp.Format("2006-01-02 15:04:05")),
	}
	keys := make([]string, 0, len(meta.Labels))
	for k := range meta.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pairs = append(pairs, report.S(k, meta.Labels[k]))
	}
	pairs = append(pairs, report.Metrics(meta.Params)...)
	fmt.Println(report.Summary(meta.ID, pairs...))
	fmt.Println()
	fmt.Println(report.Summary("metrics", report.Metrics(meta.Metrics)...))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	table, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WriteCSV(os.Stdout, table)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	table, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, table)
}
