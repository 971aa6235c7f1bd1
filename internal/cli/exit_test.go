package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/matzehuels/pyrapath/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"canceled", fmt.Errorf("solve: %w", context.Canceled), ExitInterrupted},
		{"write", errors.New(errors.ErrCodeFileWrite, "disk full"), ExitWrite},
		{"exists", errors.New(errors.ErrCodeFileExists, "exists"), ExitWrite},
		{"missing file", fmt.Errorf("solve x: %w", errors.New(errors.ErrCodeFileNotFound, "nope")), ExitNoInput},
		{"no keyword", errors.New(errors.ErrCodeMissingTargetWord, "no target"), ExitNoKeyword},
		{"bad target", errors.New(errors.ErrCodeInvalidTarget, "abc"), ExitBadTarget},
		{"malformed", fmt.Errorf("build: %w", errors.New(errors.ErrCodeMalformedPyramid, "row")), ExitMalformed},
		{"bad cell", errors.New(errors.ErrCodeNonIntegerValue, "x"), ExitBadCell},
		{"invalid path", errors.New(errors.ErrCodeInvalidPath, "LX"), ExitFailure},
		{"plain", fmt.Errorf("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
