package ai

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the disabled client. Callers treat it like any
// other enrichment failure, so dreams are still created without AI content.
var ErrDisabled = errors.New("AI enrichment is not configured")

// Disabled is a no-op Interpreter/Illustrator used when no API key is set.
type Disabled struct{}

func (Disabled) Interpret(context.Context, string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) Illustrate(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}
