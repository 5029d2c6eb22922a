package dio

import (
	"errors"
	"log"
)

// HardwareAccess is the single capability this package needs from the
// robot controller: a full-width masked write to the shared DIO
// register. Positions carrying DIO_MASK in mask must be left physically
// untouched, whatever dout carries there. Implementations report a
// missing DIO backend with ErrUnsupported.
type HardwareAccess interface {
	WriteDigitalOutputWithMask(dout []Level, mask []Level) (ok bool, err error)
}

// Writer expands sparse channel sets into full-width (dout, mask)
// vector pairs for the shared 32-bit DIO register. The register is
// shared with other subsystems; the mask is the only thing keeping a
// hand write from clobbering their bits, so callers must only claim
// channels from their own reserved range.
type Writer struct {
	Verbose bool // If set, log the computed vectors before writing.

	parent HardwareAccess
}

// NewWriter creates a Writer around the robot's hardware access.
// A nil parent is refused up front; a Writer without one could only
// fail later.
func NewWriter(parent HardwareAccess) (w *Writer, err error) {
	if parent == nil {
		err = ErrNoParent
		return
	}

	w = &Writer{parent: parent}

	return
}

// Write commands the 1-based channels in setIndices and pads every
// other owned channel with fill. The value written to set channels is
// the logical complement of fill. Only channels in ownedIndices are
// unmasked; a channel in setIndices but not in ownedIndices produces an
// output bit the mask suppresses. Keeping the two consistent is the
// caller's responsibility.
//
// The hardware is invoked exactly once, with no retry. Returns true if
// the register accepted the write.
func (w *Writer) Write(setIndices []int, ownedIndices []int, fill Level) (ok bool) {
	dout := make([]Level, DIO_WIDTH)
	mask := make([]Level, DIO_WIDTH)
	for n := range dout {
		dout[n] = fill
		mask[n] = DIO_MASK
	}

	// The value meaning "commanded on" is the complement of the fill.
	alternate := DIO_ASSIGN_ON
	if fill == DIO_ASSIGN_ON {
		alternate = DIO_ASSIGN_OFF
	}

	for _, i := range setIndices {
		if i < 1 || i > DIO_WIDTH {
			log.Printf("handio: dio: %v", ErrChannelRange(i))
			return
		}
		dout[i-1] = alternate
	}

	for _, i := range ownedIndices {
		if i < 1 || i > DIO_WIDTH {
			log.Printf("handio: dio: %v", ErrChannelRange(i))
			return
		}
		// For masking, the owned symbol is always 1 regardless of the
		// output polarity.
		mask[i-1] = 1
	}

	if w.Verbose {
		log.Printf("dout: %v", dout)
		log.Printf("mask: %v", mask)
		log.Printf("chan: %v", Legend())
	}

	ok, err := w.parent.WriteDigitalOutputWithMask(dout, mask)
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			log.Printf("handio: dio: %v (no DIO backend; simulator?)", err)
		} else {
			log.Printf("handio: dio: write rejected: %v", err)
		}
		ok = false
	}

	return
}
