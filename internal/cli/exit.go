package cli

import (
	"context"
	stderrors "errors"

	"github.com/matzehuels/pyrapath/pkg/errors"
)

// Exit codes returned by [ExitCode].
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitWrite       = 2
	ExitNoInput     = 3
	ExitNoKeyword   = 5
	ExitBadTarget   = 6
	ExitMalformed   = 7
	ExitBadCell     = 8
	ExitInterrupted = 130 // Standard shell convention for SIGINT
)

// ExitCode maps a command error to a process exit code. A nil error, which
// includes a solve that found no matching path, maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if stderrors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeFileWrite, errors.ErrCodeFileExists:
		return ExitWrite
	case errors.ErrCodeFileNotFound:
		return ExitNoInput
	case errors.ErrCodeMissingTargetWord:
		return ExitNoKeyword
	case errors.ErrCodeInvalidTarget:
		return ExitBadTarget
	case errors.ErrCodeMalformedPyramid:
		return ExitMalformed
	case errors.ErrCodeNonIntegerValue:
		return ExitBadCell
	default:
		return ExitFailure
	}
}
