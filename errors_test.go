package commitsense_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgebal/commitsense"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &commitsense.ValidationError{Field: "rootDir", Reason: "must not be empty"}
	assert.Equal(t, "rootDir: must not be empty", err.Error())

	bare := &commitsense.ValidationError{Reason: "not a Git repository"}
	assert.Equal(t, "not a Git repository", bare.Error())
}

func TestGitError_PreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("index corrupt")
	err := &commitsense.GitError{Op: "staged changes", Err: cause}

	assert.Contains(t, err.Error(), "staged changes")
	assert.Contains(t, err.Error(), "index corrupt")
	assert.ErrorIs(t, err, cause)
}
