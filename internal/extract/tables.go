package extract

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/joseph-ayodele/om-scorecard/constants"
)

type rect struct {
	x0, y0, x1, y1 float64
}

// LooksLikeRealTable rejects grids that are mostly one-letter cells: a real
// table has at least MinTableCells non-empty cells averaging at least
// MinWordsPerCell words each.
func LooksLikeRealTable(t Table) bool {
	cells, words := 0, 0
	for _, row := range t {
		for _, c := range row {
			if strings.TrimSpace(c) == "" {
				continue
			}
			cells++
			words += len(strings.Fields(c))
		}
	}
	if cells < constants.MinTableCells {
		return false
	}
	return float64(words)/float64(cells) >= constants.MinWordsPerCell
}

// ExtractTables scans relevant pages for real tables. It stops once
// MaxGoodTables are found or after the first page that yields any.
func ExtractTables(doc Document, settings []TableSettings, keywords []string) ([]FoundTable, error) {
	kw := keywordRegexp(keywords)
	var good []FoundTable
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		text, err := page.Text()
		if err != nil {
			return good, fmt.Errorf("page %d text: %w", i, err)
		}
		if !kw.MatchString(strings.ToUpper(text)) {
			continue
		}
		for _, s := range settings {
			tables, err := page.Tables(s)
			if err != nil {
				return good, fmt.Errorf("page %d tables: %w", i, err)
			}
			for _, t := range tables {
				if !LooksLikeRealTable(t) {
					continue
				}
				good = append(good, FoundTable{Page: i, Settings: s, Table: t})
				if len(good) >= constants.MaxGoodTables {
					return good, nil
				}
			}
		}
		if len(good) > 0 {
			return good, nil
		}
	}
	return good, nil
}

// clusterEdges sorts positions and merges those within tol of the previous
// cluster, returning one averaged position per cluster.
func clusterEdges(pos []float64, tol float64) []float64 {
	if len(pos) == 0 {
		return nil
	}
	sorted := append([]float64(nil), pos...)
	sort.Float64s(sorted)
	var (
		out    []float64
		sum    = sorted[0]
		n      = 1
		anchor = sorted[0]
	)
	for _, p := range sorted[1:] {
		if p-anchor <= tol {
			sum += p
			n++
			continue
		}
		out = append(out, sum/float64(n))
		sum, n, anchor = p, 1, p
	}
	return append(out, sum/float64(n))
}

// lineTables builds one grid from the edges of drawn rectangles and places
// every word by its centre.
func lineTables(rows []layoutRow, rects []rect, s TableSettings) []Table {
	var xs, ys []float64
	for _, r := range rects {
		xs = append(xs, r.x0, r.x1)
		ys = append(ys, r.y0, r.y1)
	}
	xs = clusterEdges(xs, s.IntersectionXTolerance)
	ys = clusterEdges(ys, s.IntersectionYTolerance)
	if len(xs) < 2 || len(ys) < 2 {
		return nil
	}
	// top row first
	for i, j := 0, len(ys)-1; i < j; i, j = i+1, j-1 {
		ys[i], ys[j] = ys[j], ys[i]
	}

	cells := make([][][]string, len(ys)-1)
	for i := range cells {
		cells[i] = make([][]string, len(xs)-1)
	}
	placed := false
	for _, r := range rows {
		for _, w := range r.words {
			col := sort.SearchFloat64s(xs, (w.x0+w.x1)/2) - 1
			if col < 0 || col >= len(xs)-1 {
				continue
			}
			row := -1
			for k := 0; k < len(ys)-1; k++ {
				if w.y <= ys[k] && w.y > ys[k+1] {
					row = k
					break
				}
			}
			if row < 0 {
				continue
			}
			cells[row][col] = append(cells[row][col], w.s)
			placed = true
		}
	}
	if !placed {
		return nil
	}

	t := make(Table, len(cells))
	for i, row := range cells {
		t[i] = make([]string, len(row))
		for j, c := range row {
			t[i][j] = strings.Join(c, " ")
		}
	}
	return []Table{t}
}

// textTables treats runs of adjacent rows that split into two or more cells
// as tables. Words further apart than the x tolerance start a new cell.
func textTables(rows []layoutRow, s TableSettings) []Table {
	var (
		tables []Table
		cur    Table
		lastY  = math.Inf(1)
	)
	flush := func() {
		if len(cur) >= 2 {
			tables = append(tables, pad(cur))
		}
		cur = nil
	}
	for _, r := range rows {
		cells := splitCells(r.words, s.IntersectionXTolerance)
		if len(cells) < 2 || (len(cur) > 0 && lastY-r.y > 2*s.IntersectionYTolerance) {
			flush()
		}
		if len(cells) >= 2 {
			cur = append(cur, cells)
		}
		lastY = r.y
	}
	flush()
	return tables
}

func splitCells(words []word, tol float64) []string {
	var (
		cells []string
		cur   []string
	)
	for i, w := range words {
		if i > 0 && w.x0-words[i-1].x1 > tol {
			cells = append(cells, strings.Join(cur, " "))
			cur = nil
		}
		cur = append(cur, w.s)
	}
	if len(cur) > 0 {
		cells = append(cells, strings.Join(cur, " "))
	}
	return cells
}

func pad(t Table) Table {
	width := 0
	for _, row := range t {
		width = max(width, len(row))
	}
	for i, row := range t {
		for len(row) < width {
			row = append(row, "")
		}
		t[i] = row
	}
	return t
}
