package mock

import (
	"context"

	"github.com/pgebal/commitsense"
)

// Compile-time interface verification.
var _ commitsense.Picker = (*Picker)(nil)

// Picker is a mock implementation of commitsense.Picker.
type Picker struct {
	PickFn func(ctx context.Context, resp *commitsense.CommitResponse) (*commitsense.CommitSuggestion, error)
}

func (p *Picker) Pick(ctx context.Context, resp *commitsense.CommitResponse) (*commitsense.CommitSuggestion, error) {
	return p.PickFn(ctx, resp)
}
