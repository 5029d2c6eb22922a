package dio

import (
	"errors"

	"github.com/ezrec/handio/translate"
)

var f = translate.From

var (
	// ErrNoParent is reported when a Writer is constructed without a
	// hardware access collaborator.
	ErrNoParent = errors.New(f("hardware access is required"))
	// ErrUnsupported is reported by a hardware access implementation
	// on a target with no DIO backend.
	ErrUnsupported = errors.New(f("digital output is not supported on this target"))
)

type ErrChannelRange int

func (ec ErrChannelRange) Error() string {
	return f("channel %v out of range 1..%v", int(ec), DIO_WIDTH)
}

type ErrVectorWidth int

func (ev ErrVectorWidth) Error() string {
	return f("vector width %v is not %v", int(ev), DIO_WIDTH)
}
