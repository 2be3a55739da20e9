package extract

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// buildPDF writes a minimal single-page PDF with one Courier text line per
// entry, 14pt apart.
func buildPDF(lines []string) []byte {
	var content strings.Builder
	content.WriteString("BT /F1 12 Tf 72 720 Td\n")
	for i, ln := range lines {
		if i > 0 {
			content.WriteString("0 -14 Td\n")
		}
		esc := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(ln)
		fmt.Fprintf(&content, "(%s) Tj\n", esc)
	}
	content.WriteString("ET\n")

	widths := strings.TrimSpace(strings.Repeat("600 ", 126-32+1))
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier /FirstChar 32 /LastChar 126 /Widths [" + widths + "] >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestOpenPDFText(t *testing.T) {
	data := buildPDF([]string{"Offering Memorandum", "Tenant: Taco Bell", "Acreage: 1.0 acres"})
	if !IsPDF(data) {
		t.Fatal("generated document is not recognised as a PDF")
	}
	doc, err := OpenPDF(data)
	if err != nil {
		t.Fatalf("OpenPDF: %v", err)
	}
	if doc.NumPage() != 1 {
		t.Fatalf("pages = %d, want 1", doc.NumPage())
	}
	text, err := doc.Page(1).Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := "Offering Memorandum\nTenant: Taco Bell\nAcreage: 1.0 acres"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestOpenPDFRejectsGarbage(t *testing.T) {
	if _, err := OpenPDF([]byte("%PDF-1.4\nnot really a pdf")); err == nil {
		t.Fatal("expected an error for a truncated PDF")
	}
}

func TestSplitCells(t *testing.T) {
	words := []word{
		{s: "Lease", x0: 0, x1: 30},
		{s: "Term", x0: 34, x1: 58},
		{s: "15", x0: 120, x1: 132},
		{s: "years", x0: 136, x1: 166},
	}
	got := splitCells(words, 15)
	if len(got) != 2 || got[0] != "Lease Term" || got[1] != "15 years" {
		t.Errorf("splitCells = %q", got)
	}
}

func TestTextTables(t *testing.T) {
	row := func(y float64, cells ...string) layoutRow {
		r := layoutRow{y: y}
		x := 0.0
		for _, c := range cells {
			for _, w := range strings.Fields(c) {
				r.words = append(r.words, word{s: w, x0: x, x1: x + 20, y: y})
				x += 24
			}
			x += 100
		}
		return r
	}
	rows := []layoutRow{
		row(700, "Property Overview"),
		row(680, "Tenant name", "Taco Bell"),
		row(666, "Lease type", "Absolute NNN"),
		row(652, "Year built", "2015"),
		row(500, "Footer text"),
	}
	tables := textTables(rows, TableSettings{Vertical: StrategyText, Horizontal: StrategyText, IntersectionXTolerance: 15, IntersectionYTolerance: 15})
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if len(tables[0]) != 3 || tables[0][1][1] != "Absolute NNN" {
		t.Errorf("table = %q", tables[0])
	}
}

func TestLineTables(t *testing.T) {
	rects := []rect{
		{x0: 0, y0: 600, x1: 100, y1: 700},
		{x0: 100, y0: 600, x1: 200, y1: 700},
		{x0: 0, y0: 500, x1: 100, y1: 600},
		{x0: 100, y0: 500, x1: 200, y1: 600},
	}
	rows := []layoutRow{
		{y: 650, words: []word{{s: "Tenant", x0: 10, x1: 50, y: 650}, {s: "Wendy's", x0: 110, x1: 150, y: 650}}},
		{y: 550, words: []word{{s: "Rent", x0: 10, x1: 40, y: 550}, {s: "$95,000", x0: 110, x1: 150, y: 550}}},
	}
	tables := lineTables(rows, rects, TableSettings{Vertical: StrategyLines, Horizontal: StrategyLines, IntersectionXTolerance: 10, IntersectionYTolerance: 10})
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	want := Table{{"Tenant", "Wendy's"}, {"Rent", "$95,000"}}
	if fmt.Sprint(tables[0]) != fmt.Sprint(want) {
		t.Errorf("table = %q, want %q", tables[0], want)
	}
}

func TestClusterEdges(t *testing.T) {
	got := clusterEdges([]float64{100, 0, 102, 200, 4}, 5)
	want := []float64{2, 101, 200}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("clusterEdges = %v, want %v", got, want)
	}
}
