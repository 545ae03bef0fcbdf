package outcome

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of every fault raised by misuse of a Result.
var Error = errs.Class("outcome")

// ErrInvalidAccess is matched by the panic raised when the inactive variant
// of a Result is read.
var ErrInvalidAccess = errors.New("invalid state access")

func invalidAccess(format string, args ...any) error {
	return Error.Wrap(fmt.Errorf("%w: "+format, append([]any{ErrInvalidAccess}, args...)...))
}
