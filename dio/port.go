package dio

import (
	"slices"
)

// A Call records one masked write as received by a Port.
type Call struct {
	Dout []Level
	Mask []Level
}

// Port is a simulated 32-bit DIO latch. It stands in for the robot
// controller in tests, in the verification CLI, and on targets without
// real hardware.
type Port struct {
	Pins uint32 // Latched output state, bit 0 = channel 1.

	Unsupported bool // If set, behave like a target with no DIO backend.
	Reject      bool // If set, refuse writes like rejected hardware.

	Calls []Call // Every call that reached the latch, in order.
}

var _ HardwareAccess = (*Port)(nil)

// WriteDigitalOutputWithMask latches dout into the pins wherever mask
// is owned, leaving every masked bit untouched.
func (port *Port) WriteDigitalOutputWithMask(dout []Level, mask []Level) (ok bool, err error) {
	if port.Unsupported {
		err = ErrUnsupported
		return
	}

	if len(dout) != DIO_WIDTH {
		err = ErrVectorWidth(len(dout))
		return
	}
	if len(mask) != DIO_WIDTH {
		err = ErrVectorWidth(len(mask))
		return
	}

	if port.Reject {
		return
	}

	var d, m uint32
	for n := 0; n < DIO_WIDTH; n++ {
		if dout[n] != DIO_ASSIGN_OFF {
			d |= 1 << n
		}
		if mask[n] != DIO_MASK {
			m |= 1 << n
		}
	}
	port.Pins = (port.Pins &^ m) | (d & m)

	port.Calls = append(port.Calls, Call{
		Dout: slices.Clone(dout),
		Mask: slices.Clone(mask),
	})

	ok = true

	return
}

// Channel returns the latched level of a 1-based channel.
func (port *Port) Channel(index int) (level Level) {
	if index < 1 || index > DIO_WIDTH {
		return
	}

	if (port.Pins>>(index-1))&1 != 0 {
		level = DIO_ASSIGN_ON
	}

	return
}
