// Package pipeline sequences a scorecard build: document, payload, fields,
// normalized fields, filled workbook.
package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/om-scorecard/constants"
	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/deal"
	"github.com/joseph-ayodele/om-scorecard/internal/export"
	"github.com/joseph-ayodele/om-scorecard/internal/extract"
	"github.com/joseph-ayodele/om-scorecard/internal/llm"
	"github.com/joseph-ayodele/om-scorecard/internal/scoring"
	"github.com/joseph-ayodele/om-scorecard/internal/template"
)

// PayloadExtractor turns a document into model input.
type PayloadExtractor interface {
	GetBestPayload(ctx context.Context, src extract.Source) (string, error)
}

// Request is one build.
type Request struct {
	Source extract.Source
	// OutputDir overrides the processor's output directory.
	OutputDir string
}

// Result is what a build produced. OutputPath is empty for streamed builds.
type Result struct {
	RequestID  string
	Fields     deal.Fields
	Scorecard  scoring.Scorecard
	PayloadLen int
	OutputPath string
}

// Processor coordinates payload extraction, interpretation and the
// template write. It keeps no state between builds.
type Processor struct {
	Extractor   PayloadExtractor
	Interpreter llm.Interpreter
	Template    template.Source
	Writer      *export.Writer
	OutputDir   string
	Now         func() time.Time
	Logger      *slog.Logger
}

func NewProcessor(ex PayloadExtractor, in llm.Interpreter, tpl template.Source, w *export.Writer, outputDir string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if w == nil {
		w = export.NewWriter(logger)
	}
	return &Processor{
		Extractor:   ex,
		Interpreter: in,
		Template:    tpl,
		Writer:      w,
		OutputDir:   outputDir,
		Now:         time.Now,
		Logger:      logger,
	}
}

// Payload runs only the extraction step.
func (p *Processor) Payload(ctx context.Context, src extract.Source) (string, error) {
	payload, err := p.Extractor.GetBestPayload(ctx, src)
	if err != nil {
		return "", classifyExtract(err)
	}
	return payload, nil
}

// Fields extracts and interprets src and returns normalized fields.
func (p *Processor) Fields(ctx context.Context, src extract.Source) (deal.Fields, int, error) {
	ctx, rid := common.EnsureRequestID(ctx)
	log := p.Logger.With("req_id", rid)

	payload, err := p.Payload(ctx, src)
	if err != nil {
		log.Error("pipeline.stage.failed", "stage", constants.StagePayload, "err", err)
		return deal.Fields{}, 0, err
	}
	log.Info("pipeline.stage.ok", "stage", constants.StagePayload, "payload_len", len(payload))

	fields, err := p.Interpreter.Interpret(ctx, payload)
	if err != nil {
		log.Error("pipeline.stage.failed", "stage", constants.StageInterpret, "err", err)
		return deal.Fields{}, len(payload), stageError(constants.StageInterpret, common.Unavailable("model call failed", errors.Join(common.ErrUpstream, err)))
	}
	log.Info("pipeline.stage.ok", "stage", constants.StageInterpret, "tenant", fields.Tenant(constants.UnknownTenant))
	return deal.Normalize(fields), len(payload), nil
}

// Build runs the whole pipeline and saves the workbook under the output
// directory.
func (p *Processor) Build(ctx context.Context, req Request) (Result, error) {
	ctx, rid := common.EnsureRequestID(ctx)
	start := time.Now()
	log := p.Logger.With("req_id", rid)

	fields, payloadLen, err := p.Fields(ctx, req.Source)
	if err != nil {
		return Result{RequestID: rid}, err
	}

	dir := req.OutputDir
	if dir == "" {
		dir = p.OutputDir
	}
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{RequestID: rid, Fields: fields}, common.Internal("create output dir", err)
	}
	out := filepath.Join(dir, export.OutputFilename(fields.Tenant(constants.UnknownTenant), fields.Address.CityState(), p.now()))

	tpl, err := p.openTemplate(ctx)
	if err != nil {
		log.Error("pipeline.stage.failed", "stage", constants.StageTemplate, "err", err)
		return Result{RequestID: rid, Fields: fields}, err
	}
	defer tpl.Close()

	path, err := p.Writer.Write(ctx, fields, tpl, out)
	if err != nil {
		log.Error("pipeline.stage.failed", "stage", constants.StageWrite, "err", err)
		return Result{RequestID: rid, Fields: fields}, stageError(constants.StageWrite, common.Internal("write scorecard", err))
	}

	sc := scoring.Score(fields)
	log.Info("pipeline.stage.ok",
		"stage", constants.StageDone,
		"path", path,
		"total", sc.Total(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{RequestID: rid, Fields: fields, Scorecard: sc, PayloadLen: payloadLen, OutputPath: path}, nil
}

// BuildTo runs the whole pipeline and streams the workbook to w.
func (p *Processor) BuildTo(ctx context.Context, src extract.Source, w io.Writer) (Result, error) {
	ctx, rid := common.EnsureRequestID(ctx)
	fields, payloadLen, err := p.Fields(ctx, src)
	if err != nil {
		return Result{RequestID: rid}, err
	}
	tpl, err := p.openTemplate(ctx)
	if err != nil {
		return Result{RequestID: rid, Fields: fields}, err
	}
	defer tpl.Close()

	sc, err := p.Writer.WriteTo(ctx, fields, tpl, w)
	if err != nil {
		return Result{RequestID: rid, Fields: fields}, stageError(constants.StageWrite, common.Internal("write scorecard", err))
	}
	return Result{RequestID: rid, Fields: fields, Scorecard: sc, PayloadLen: payloadLen}, nil
}

// Filename is the name Build would give the workbook for fields.
func (p *Processor) Filename(fields deal.Fields) string {
	return export.OutputFilename(fields.Tenant(constants.UnknownTenant), fields.Address.CityState(), p.now())
}

func (p *Processor) openTemplate(ctx context.Context) (io.ReadCloser, error) {
	if p.Template == nil {
		return nil, stageError(constants.StageTemplate, common.InvalidArgument("no template configured", common.ErrInvalidInput))
	}
	rc, err := p.Template.Open(ctx)
	if err != nil {
		return nil, stageError(constants.StageTemplate, err)
	}
	return rc, nil
}

func (p *Processor) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func classifyExtract(err error) error {
	switch {
	case errors.Is(err, extract.ErrUnsupportedSource):
		return stageError(constants.StagePayload, common.InvalidArgument("unsupported document", err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return stageError(constants.StagePayload, common.Internal("read document", errors.Join(common.ErrInfrastructure, err)))
	}
}

// stageError prefixes err with the stage name, keeping its classification.
func stageError(stage constants.Stage, err error) error {
	return common.WrapError(err, string(stage))
}
