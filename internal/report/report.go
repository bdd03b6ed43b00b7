// Package report renders run summaries for the terminal: a titled block of
// labelled values and bordered numeric tables.
package report

import (
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Pair is one labelled line of a summary block.
type Pair struct {
	Label string
	Value string
}

func F(label string, v float64) Pair {
	return Pair{Label: label, Value: strconv.FormatFloat(v, 'g', 6, 64)}
}

func S(label, v string) Pair {
	return Pair{Label: label, Value: v}
}

// Summary renders a title followed by aligned label/value lines.
func Summary(title string, pairs ...Pair) string {
	lines := make([]string, 0, len(pairs)+1)
	lines = append(lines, HeaderStyle.Render(title))
	for _, p := range pairs {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			MetricLabel.Render(p.Label),
			MetricValue.Render(p.Value),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Metrics turns a metric map into pairs sorted by name.
func Metrics(m map[string]float64) []Pair {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]Pair, len(names))
	for i, name := range names {
		pairs[i] = F(name, m[name])
	}
	return pairs
}

// Table renders rows of numbers under headers with a rounded border.
func Table(headers []string, rows [][]float64, precision int) string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = strconv.FormatFloat(v, 'f', precision, 64)
		}
	}
	return StringTable(headers, cells)
}

func StringTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		})
	return t.String()
}

// Sample picks at most n indices spread evenly over [0, total), always
// including the last one.
func Sample(total, n int) []int {
	if total <= 0 || n <= 0 {
		return nil
	}
	if total <= n {
		idx := make([]int, total)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if n == 1 {
		return []int{total - 1}
	}
	idx := make([]int, n)
	for k := 0; k < n; k++ {
		idx[k] = k * (total - 1) / (n - 1)
	}
	return idx
}

// Note renders de-emphasised text.
func Note(text string) string {
	return Subtle.Render(text)
}
