package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/export"
	"github.com/joseph-ayodele/om-scorecard/internal/extract"
	"github.com/joseph-ayodele/om-scorecard/internal/llm"
	"github.com/joseph-ayodele/om-scorecard/internal/llm/openai"
	"github.com/joseph-ayodele/om-scorecard/internal/template"
)

// FromConfig builds a Processor backed by the OpenAI client and the
// configured template location.
func FromConfig(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*Processor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tpl, err := template.FromConfig(ctx, cfg.Template, logger)
	if err != nil {
		return nil, err
	}
	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     time.Duration(cfg.LLM.Timeout),
	}, logger)
	logger.Info("llm.client.ready", "model", client.Model())

	return NewProcessor(
		extract.NewExtractor(extract.DefaultTableSettings, logger),
		llm.NewFieldInterpreter(client, logger),
		tpl,
		export.NewWriter(logger),
		cfg.Output.Dir,
		logger,
	), nil
}
