package main

import (
	"errors"

	"github.com/marcin-radoszewski/ren/internal/verror"
)

// Process exit codes; syntax/access/internal follow the verror
// category mapping.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitSyntax = 2
	ExitAccess = 3
	ExitUsage  = 64
)

func exitCodeFor(err error) int {
	var vErr *verror.Error
	if errors.As(err, &vErr) {
		return verror.ToExitCode(vErr.Category)
	}
	return ExitError
}
