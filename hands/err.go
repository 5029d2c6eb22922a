package hands

import (
	"errors"

	"github.com/ezrec/handio/translate"
)

var f = translate.From

// ErrNotImplemented reports a gesture the concrete hand variant does
// not support. This is deliberate: callers discover the capability
// subset of a variant by failure, not by a silent no-op.
var ErrNotImplemented = errors.New(f("the method is not implemented in the derived class"))
