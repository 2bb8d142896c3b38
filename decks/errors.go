package decks

import "fmt"

// BuildError records which deck and which step of its build failed.
type BuildError struct {
	Deck string
	Step string // "open document", "save"
	Err  error
}

// Error formats as [deck.step] cause.
func (e *BuildError) Error() string {
	return fmt.Sprintf("[%s.%s] %v", e.Deck, e.Step, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// WrapBuildError attaches deck context. A nil err stays nil.
func WrapBuildError(deck, step string, err error) error {
	if err == nil {
		return nil
	}
	return &BuildError{Deck: deck, Step: step, Err: err}
}

// WrapOperationError wraps err as "failed to <operation>: err".
func WrapOperationError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}
