package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/climlab/internal/heat"
)

type ExportData struct {
	Run    *RunMetadata `json:"run"`
	Header []string     `json:"header"`
	Rows   [][]float64  `json:"rows"`
}

// WriteCSV emits the header then one line per row at full precision.
func WriteCSV(w io.Writer, table *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return err
	}

	record := make([]string, 0, len(table.Header))
	for _, row := range table.Rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ExportJSON(w io.Writer, meta *RunMetadata, table *Table) error {
	data := ExportData{
		Run:    meta,
		Header: table.Header,
		Rows:   table.Rows,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// FieldTable lays a heat solution out as one row per space node:
// x, then the value at every time point.
func FieldTable(res *heat.Result) *Table {
	header := make([]string, 0, len(res.Time)+1)
	header = append(header, "x")
	for _, t := range res.Time {
		header = append(header, "t="+strconv.FormatFloat(t, 'g', 6, 64))
	}

	rows := make([][]float64, len(res.Space))
	for i, x := range res.Space {
		row := make([]float64, 0, len(res.Time)+1)
		row = append(row, x)
		row = append(row, res.Field[i]...)
		rows[i] = row
	}
	return &Table{Header: header, Rows: rows}
}

// SeriesTable zips equally long columns under the given names.
func SeriesTable(names []string, cols ...[]float64) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%d names for %d columns", len(names), len(cols))
	}
	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	for k, c := range cols {
		if len(c) != n {
			return nil, fmt.Errorf("column %s has %d values, want %d", names[k], len(c), n)
		}
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, len(cols))
		for k, c := range cols {
			rows[i][k] = c[i]
		}
	}
	return &Table{Header: names, Rows: rows}, nil
}
