package extract

import (
	"errors"
)

// ErrUnsupportedSource is returned for a source that is neither text nor a
// readable PDF.
var ErrUnsupportedSource = errors.New("unsupported source")

// Source is a document handed to the Extractor. It is one of TextSource,
// FileSource or BytesSource.
type Source interface {
	sourceName() string
}

// TextSource is literal text, such as a pasted email body.
type TextSource string

// FileSource is a .pdf or .txt file on disk.
type FileSource struct {
	Path string
}

// BytesSource is an uploaded document. Name supplies the extension; data
// starting with "%PDF-" is treated as a PDF regardless.
type BytesSource struct {
	Name string
	Data []byte
}

func (TextSource) sourceName() string    { return "text" }
func (s FileSource) sourceName() string  { return s.Path }
func (s BytesSource) sourceName() string { return s.Name }

// Document is a paged document with extractable text and tables.
type Document interface {
	NumPage() int
	// Page returns the 1-based page i.
	Page(i int) Page
}

type Page interface {
	Text() (string, error)
	Tables(settings TableSettings) ([]Table, error)
}

// Table is a grid of cell strings, top row first. Empty cells are "".
type Table [][]string

// Strategy chooses how cell boundaries are found.
type Strategy string

const (
	// StrategyLines uses the ruling lines and rectangles drawn on the page.
	StrategyLines Strategy = "lines"
	// StrategyText uses gaps between words.
	StrategyText Strategy = "text"
)

// TableSettings is one detection configuration. Tolerances are in points.
type TableSettings struct {
	Vertical               Strategy `json:"vertical_strategy"`
	Horizontal             Strategy `json:"horizontal_strategy"`
	IntersectionXTolerance float64  `json:"intersection_x_tolerance"`
	IntersectionYTolerance float64  `json:"intersection_y_tolerance"`
}

// DefaultTableSettings are tried in order on every relevant page.
var DefaultTableSettings = []TableSettings{
	{Vertical: StrategyLines, Horizontal: StrategyLines, IntersectionXTolerance: 10, IntersectionYTolerance: 10},
	{Vertical: StrategyLines, Horizontal: StrategyLines, IntersectionXTolerance: 25, IntersectionYTolerance: 25},
	{Vertical: StrategyText, Horizontal: StrategyText, IntersectionXTolerance: 15, IntersectionYTolerance: 15},
}

// FoundTable is an accepted table and where it came from.
type FoundTable struct {
	Page     int
	Settings TableSettings
	Table    Table
}
