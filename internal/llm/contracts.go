package llm

import (
	"context"

	"github.com/joseph-ayodele/om-scorecard/internal/deal"
)

// Message is one chat turn sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer sends a chat to a JSON-mode model and returns the raw content of
// the first choice.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Interpreter turns a document payload into deal fields.
type Interpreter interface {
	Interpret(ctx context.Context, payload string) (deal.Fields, error)
}
