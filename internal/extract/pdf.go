package extract

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// IsPDF reports whether data starts with the PDF magic bytes.
func IsPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

type pdfDocument struct {
	r *pdf.Reader
}

// OpenPDF parses an in-memory PDF.
func OpenPDF(data []byte) (doc Document, err error) {
	// the reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("open pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &pdfDocument{r: r}, nil
}

func (d *pdfDocument) NumPage() int { return d.r.NumPage() }

func (d *pdfDocument) Page(i int) Page {
	return &pdfPage{p: d.r.Page(i)}
}

type pdfPage struct {
	p      pdf.Page
	loaded bool
	rows   []layoutRow
	rects  []pdf.Rect
	err    error
}

// load reads the content stream once and groups glyphs into rows.
func (pg *pdfPage) load() error {
	if pg.loaded {
		return pg.err
	}
	pg.loaded = true
	if pg.p.V.IsNull() {
		return nil
	}
	content, err := readContent(pg.p)
	if err != nil {
		pg.err = err
		return err
	}
	pg.rows = groupRows(content.Text)
	pg.rects = content.Rect
	return nil
}

func readContent(p pdf.Page) (c pdf.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read page content: %v", r)
		}
	}()
	return p.Content(), nil
}

func (pg *pdfPage) Text() (string, error) {
	if err := pg.load(); err != nil {
		return "", err
	}
	lines := make([]string, 0, len(pg.rows))
	for _, r := range pg.rows {
		lines = append(lines, r.text())
	}
	return strings.Join(lines, "\n"), nil
}

func (pg *pdfPage) Tables(s TableSettings) ([]Table, error) {
	if err := pg.load(); err != nil {
		return nil, err
	}
	if s.Vertical == StrategyLines || s.Horizontal == StrategyLines {
		edges := make([]rect, 0, len(pg.rects))
		for _, r := range pg.rects {
			edges = append(edges, rect{x0: r.Min.X, y0: r.Min.Y, x1: r.Max.X, y1: r.Max.Y})
		}
		return lineTables(pg.rows, edges, s), nil
	}
	return textTables(pg.rows, s), nil
}

// word is a run of glyphs with no visible gap.
type word struct {
	s      string
	x0, x1 float64
	y      float64
}

type layoutRow struct {
	y     float64
	words []word
}

func (r layoutRow) text() string {
	parts := make([]string, len(r.words))
	for i, w := range r.words {
		parts[i] = w.s
	}
	return strings.Join(parts, " ")
}

// rowTolerance groups glyphs whose baselines differ by at most this much.
const rowTolerance = 2.0

// groupRows turns positioned glyphs into top-to-bottom rows of words.
func groupRows(glyphs []pdf.Text) []layoutRow {
	sorted := make([]pdf.Text, len(glyphs))
	copy(sorted, glyphs)
	// content streams usually emit glyphs in reading order; keep it for ties
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var rows [][]pdf.Text
	for _, g := range sorted {
		n := len(rows)
		if n > 0 && math.Abs(rows[n-1][0].Y-g.Y) <= rowTolerance {
			rows[n-1] = append(rows[n-1], g)
			continue
		}
		rows = append(rows, []pdf.Text{g})
	}

	out := make([]layoutRow, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r, func(i, j int) bool { return r[i].X < r[j].X })
		words := splitWords(r)
		if len(words) == 0 {
			continue
		}
		out = append(out, layoutRow{y: r[0].Y, words: words})
	}
	return out
}

func splitWords(glyphs []pdf.Text) []word {
	var (
		words []word
		cur   strings.Builder
		w     word
	)
	flush := func() {
		if cur.Len() > 0 {
			w.s = cur.String()
			words = append(words, w)
			cur.Reset()
		}
	}
	for i, g := range glyphs {
		if strings.TrimFunc(g.S, unicode.IsSpace) == "" {
			flush()
			continue
		}
		if cur.Len() > 0 && i > 0 {
			prevEnd := glyphs[i-1].X + glyphs[i-1].W
			if g.X-prevEnd > g.FontSize*0.25 {
				flush()
			}
		}
		if cur.Len() == 0 {
			w = word{x0: g.X, y: g.Y}
		}
		cur.WriteString(g.S)
		w.x1 = g.X + g.W
	}
	flush()
	return words
}
