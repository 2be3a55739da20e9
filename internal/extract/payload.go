package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joseph-ayodele/om-scorecard/constants"
)

func keywordRegexp(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
}

var payloadKeywords = keywordRegexp(constants.PayloadKeywords)

// KeywordWindow keeps the lines that mention a payload keyword plus window
// lines of context on either side. Overlapping windows merge. The result is
// "" when nothing matches.
func KeywordWindow(text string, window int) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	keep := make([]bool, len(lines))
	hit := false
	for i, ln := range lines {
		if !payloadKeywords.MatchString(ln) {
			continue
		}
		hit = true
		for j := max(0, i-window); j <= min(len(lines)-1, i+window); j++ {
			keep[j] = true
		}
	}
	if !hit {
		return ""
	}
	out := make([]string, 0, len(lines))
	for i, ln := range lines {
		if keep[i] {
			out = append(out, ln)
		}
	}
	return strings.Join(out, "\n")
}

// PlainText joins every page's text with blank lines. Pages that fail to
// decode contribute nothing.
func PlainText(doc Document) (string, []string) {
	var (
		pages    []string
		warnings []string
	)
	for i := 1; i <= doc.NumPage(); i++ {
		t, err := doc.Page(i).Text()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
		}
		pages = append(pages, t)
	}
	return strings.Join(pages, "\n\n"), warnings
}

// Extractor turns a Source into the text payload sent to the model.
type Extractor struct {
	settings []TableSettings
	logger   *slog.Logger
}

func NewExtractor(settings []TableSettings, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if len(settings) == 0 {
		settings = DefaultTableSettings
	}
	return &Extractor{settings: settings, logger: logger}
}

// GetBestPayload returns the keyword-windowed text of src, or its full text
// when no line mentions a keyword. An empty document is not an error.
func (e *Extractor) GetBestPayload(ctx context.Context, src Source) (string, error) {
	if src == nil {
		return "", ErrUnsupportedSource
	}
	start := time.Now()
	full, err := e.fullText(ctx, src)
	if err != nil {
		e.logger.Error("extract.payload.error", "source", src.sourceName(), "err", err)
		return "", err
	}
	payload := KeywordWindow(full, constants.KeywordWindow)
	windowed := payload != ""
	if !windowed {
		payload = full
	}
	e.logger.Info("extract.payload.ok",
		"source", src.sourceName(),
		"full_len", len(full),
		"payload_len", len(payload),
		"windowed", windowed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return payload, nil
}

// Tables runs table detection over a PDF source. Text sources have none.
func (e *Extractor) Tables(ctx context.Context, src Source) ([]FoundTable, error) {
	if src == nil {
		return nil, ErrUnsupportedSource
	}
	doc, err := e.document(ctx, src)
	if err != nil || doc == nil {
		return nil, err
	}
	found, err := ExtractTables(doc, e.settings, constants.PayloadKeywords)
	if err != nil {
		return found, err
	}
	e.logger.Debug("extract.tables.ok", "source", src.sourceName(), "tables", len(found))
	return found, nil
}

func (e *Extractor) fullText(ctx context.Context, src Source) (string, error) {
	if t, ok := src.(TextSource); ok {
		return string(t), nil
	}
	if s, ok := src.(FileSource); ok && constants.MapExtToFormat(filepath.Ext(s.Path)) == constants.TEXT {
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", s.Path, err)
		}
		return string(b), nil
	}
	if s, ok := src.(BytesSource); ok && !IsPDF(s.Data) && constants.MapExtToFormat(filepath.Ext(s.Name)) == constants.TEXT {
		return string(s.Data), nil
	}

	doc, err := e.document(ctx, src)
	if err != nil {
		return "", err
	}
	text, warnings := PlainText(doc)
	if len(warnings) > 0 {
		e.logger.Warn("extract.pdf.page_errors", "source", src.sourceName(), "warnings", warnings)
	}
	if found, err := ExtractTables(doc, e.settings, constants.PayloadKeywords); err == nil {
		e.logger.Debug("extract.tables.ok", "source", src.sourceName(), "pages", doc.NumPage(), "tables", len(found))
	}
	return text, nil
}

// document opens a PDF source. It returns a nil Document for text sources.
func (e *Extractor) document(ctx context.Context, src Source) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	switch s := src.(type) {
	case TextSource:
		return nil, nil
	case FileSource:
		switch constants.MapExtToFormat(filepath.Ext(s.Path)) {
		case constants.TEXT:
			return nil, nil
		case constants.PDF:
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, s.Path)
		}
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.Path, err)
		}
		data = b
	case BytesSource:
		if !IsPDF(s.Data) {
			if constants.MapExtToFormat(filepath.Ext(s.Name)) == constants.TEXT {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, s.Name)
		}
		data = s.Data
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
	return OpenPDF(data)
}
