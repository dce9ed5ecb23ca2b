package native

import (
	"strconv"

	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/value"
	"github.com/marcin-radoszewski/ren/internal/verror"
)

func arityError(name string, want, got int) error {
	return verror.NewScriptError(verror.ErrIDArgCount,
		[3]string{name, strconv.Itoa(want), strconv.Itoa(got)})
}

func typeError(name, want string, got core.Value) error {
	return verror.NewScriptError(verror.ErrIDTypeMismatch,
		[3]string{name, want, value.TypeToString(got.GetType())})
}

// mutableCheck guards in-place series mutation: frozen series are
// read-only, locked series are rule blocks under an active parse.
func mutableCheck(name string, frozen, locked bool) error {
	if locked {
		return verror.NewScriptError(verror.ErrIDParseAlteredRule, [3]string{name, "", ""})
	}
	if frozen {
		return verror.NewAccessError(verror.ErrIDReadOnly, [3]string{name, "", ""})
	}
	return nil
}
