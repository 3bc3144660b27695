package mock

import (
	"context"

	"github.com/pgebal/commitsense"
)

// Compile-time interface verification.
var _ commitsense.Repository = (*Repository)(nil)

// Repository is a mock implementation of commitsense.Repository.
type Repository struct {
	ValidateFn       func(ctx context.Context, dir string) error
	StagedChangesFn  func(ctx context.Context, dir string) ([]commitsense.ChangedFile, error)
	WorkingChangesFn func(ctx context.Context, dir string) ([]commitsense.ChangedFile, error)
	DiffFn           func(ctx context.Context, dir, path string) (string, error)
}

func (r *Repository) Validate(ctx context.Context, dir string) error {
	return r.ValidateFn(ctx, dir)
}

func (r *Repository) StagedChanges(ctx context.Context, dir string) ([]commitsense.ChangedFile, error) {
	return r.StagedChangesFn(ctx, dir)
}

func (r *Repository) WorkingChanges(ctx context.Context, dir string) ([]commitsense.ChangedFile, error) {
	return r.WorkingChangesFn(ctx, dir)
}

func (r *Repository) Diff(ctx context.Context, dir, path string) (string, error) {
	return r.DiffFn(ctx, dir, path)
}
