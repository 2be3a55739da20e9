package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/deal"
)

// FieldInterpreter asks a Completer for the deal attributes in a payload.
// Completer failures are returned; anything wrong with the content itself
// degrades to empty fields.
type FieldInterpreter struct {
	completer Completer
	now       func() time.Time
	logger    *slog.Logger
}

type Option func(*FieldInterpreter)

// WithClock fixes the date lease terms are measured from.
func WithClock(now func() time.Time) Option {
	return func(i *FieldInterpreter) { i.now = now }
}

func NewFieldInterpreter(c Completer, logger *slog.Logger, opts ...Option) *FieldInterpreter {
	if logger == nil {
		logger = slog.Default()
	}
	i := &FieldInterpreter{completer: c, now: time.Now, logger: logger}
	for _, o := range opts {
		o(i)
	}
	return i
}

func (i *FieldInterpreter) Interpret(ctx context.Context, payload string) (deal.Fields, error) {
	ctx, rid := common.EnsureRequestID(ctx)
	start := time.Now()
	i.logger.Info("llm.interpret.start", "req_id", rid, "payload_len", len(payload))

	content, err := i.completer.Complete(ctx, []Message{{Role: "user", Content: BuildPrompt(payload)}})
	if err != nil {
		i.logger.Error("llm.interpret.completion_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return deal.Fields{}, fmt.Errorf("model completion: %w", err)
	}

	fields := i.decode(rid, content)
	i.resolveLeaseTerm(rid, &fields)

	i.logger.Info("llm.interpret.ok",
		"req_id", rid,
		"tenant", fields.CurrentTenant.String(),
		"lease_years", fields.LeaseTerm.Years.String(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, nil
}

func (i *FieldInterpreter) decode(rid, content string) deal.Fields {
	clean, _, err := NormalizeAndSanitizeJSON(content, i.logger)
	if err != nil {
		i.logger.Error("llm.interpret.parse_error", "req_id", rid, "error", err, "content_len", len(content))
		return deal.Fields{}
	}
	if err := ValidateFields(clean); err != nil {
		i.logger.Warn("llm.interpret.schema_mismatch", "req_id", rid, "error", err)
	}
	fields, err := deal.DecodeFields(clean)
	if err != nil {
		i.logger.Error("llm.interpret.decode_error", "req_id", rid, "error", err)
		return deal.Fields{}
	}
	return fields
}

// resolveLeaseTerm replaces the model's remaining-years arithmetic with our
// own.
func (i *FieldInterpreter) resolveLeaseTerm(rid string, f *deal.Fields) {
	expiration := f.LeaseTerm.Expiration
	if err := f.ResolveLeaseTerm(i.now()); err != nil {
		i.logger.Warn("llm.interpret.lease_term_unparsed", "req_id", rid, "expiration", expiration, "error", err)
	}
}
