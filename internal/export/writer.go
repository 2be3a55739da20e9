// Package export fills the scorecard workbook template.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/om-scorecard/internal/deal"
	"github.com/joseph-ayodele/om-scorecard/internal/scoring"
)

// Writer scores deal fields and writes them into a copy of the template.
// The template reader is only read; the result goes to a new file or writer.
type Writer struct {
	logger *slog.Logger
}

func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// Write fills template with fields and saves it to outputPath.
func (w *Writer) Write(ctx context.Context, fields deal.Fields, template io.Reader, outputPath string) (string, error) {
	start := time.Now()
	f, sc, err := w.fill(ctx, fields, template)
	if err != nil {
		return "", err
	}
	defer w.close(f)

	if err := f.SaveAs(outputPath); err != nil {
		w.logger.Error("export.xlsx.save_error", "path", outputPath, "error", err)
		return "", fmt.Errorf("save workbook: %w", err)
	}
	w.logger.Info("export.xlsx.ok",
		"path", outputPath,
		"tenant", sc.Tenant,
		"total", sc.Total(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return outputPath, nil
}

// WriteTo fills template with fields and streams the workbook to out.
func (w *Writer) WriteTo(ctx context.Context, fields deal.Fields, template io.Reader, out io.Writer) (scoring.Scorecard, error) {
	f, sc, err := w.fill(ctx, fields, template)
	if err != nil {
		return scoring.Scorecard{}, err
	}
	defer w.close(f)

	if err := f.Write(out); err != nil {
		return scoring.Scorecard{}, fmt.Errorf("write workbook: %w", err)
	}
	w.logger.Info("export.xlsx.streamed", "tenant", sc.Tenant, "total", sc.Total())
	return sc, nil
}

func (w *Writer) fill(ctx context.Context, fields deal.Fields, template io.Reader) (*excelize.File, scoring.Scorecard, error) {
	if err := ctx.Err(); err != nil {
		return nil, scoring.Scorecard{}, err
	}
	f, err := excelize.OpenReader(template)
	if err != nil {
		return nil, scoring.Scorecard{}, fmt.Errorf("open template: %w", err)
	}
	sc := scoring.Score(fields)
	if err := Fill(f, sc); err != nil {
		w.close(f)
		return nil, scoring.Scorecard{}, err
	}
	return f, sc, nil
}

func (w *Writer) close(f *excelize.File) {
	if err := f.Close(); err != nil {
		w.logger.Warn("export.xlsx.close_error", "error", err)
	}
}

// Fill writes sc onto the active sheet of f.
func Fill(f *excelize.File, sc scoring.Scorecard) error {
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return fmt.Errorf("template has no active sheet")
	}
	if err := f.SetCellValue(sheet, HeaderCell, sc.Header); err != nil {
		return fmt.Errorf("write %s: %w", HeaderCell, err)
	}
	for _, e := range sc.Entries {
		cells, ok := Layout[e.Attribute]
		if !ok {
			return fmt.Errorf("no cells for %s", e.Attribute)
		}
		if err := f.SetCellValue(sheet, cells.Score, e.Score); err != nil {
			return fmt.Errorf("write %s: %w", cells.Score, err)
		}
		if err := f.SetCellValue(sheet, cells.Anchor(), e.Comment); err != nil {
			return fmt.Errorf("write %s: %w", cells.Anchor(), err)
		}
	}
	return nil
}
