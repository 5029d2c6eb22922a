// Package hands commands the end-effectors of a dual-arm robot over a
// shared DIO register. BaseHands owns the generic masked-write plumbing
// and the gesture contract; concrete variants implement the gesture
// subset their hardware carries.
package hands

import (
	"github.com/ezrec/handio/dio"
)

// Hand identifiers. The robot is dual-arm, so the indicator lives at
// the top of the hierarchy; "0" is reserved for "both hands".
const (
	HAND_L = "1"
	HAND_R = "2"
)

// DIO channels reserved for hand functions. Channels 17..32 belong to
// the hands physically; 17..28 carry the logical assignments. Derived
// hand types rename these to the purpose of each pin on their hardware.
const (
	DIO_17 = 17
	DIO_18 = 18
	DIO_19 = 19
	DIO_20 = 20
	DIO_21 = 21
	DIO_22 = 22
	DIO_23 = 23
	DIO_24 = 24
	DIO_25 = 25
	DIO_26 = 26
	DIO_27 = 27
	DIO_28 = 28
)

const (
	// INIT_FIRST and INIT_LAST bound the physically hand-reserved
	// channel range that InitDIO claims.
	INIT_FIRST = 17
	INIT_LAST  = 32
)

// INIT_SAFE_FILL is the level InitDIO pads every hand channel with.
// The tool changer valves (channels 19 and 24 on the 05 hands) are
// fail-open: their asserted state is what keeps an attached tool from
// falling, so the init fill must be the asserted level. That coupling
// between wiring and fill value lives here and nowhere else.
const INIT_SAFE_FILL = dio.DIO_ASSIGN_ON

// Hands is the gesture capability set shared by every hand variant of
// the dual-arm robot. A variant implements the subset its hardware
// supports; the rest keep the BaseHands behavior of failing with
// ErrNotImplemented.
type Hands interface {
	// InitDIO brings every hand-reserved channel to the safe default.
	InitDIO() (ok bool)

	AirhandLDrawin() (ok bool, err error)
	AirhandRDrawin() (ok bool, err error)
	AirhandLKeep() (ok bool, err error)
	AirhandRKeep() (ok bool, err error)
	AirhandLRelease() (ok bool, err error)
	AirhandRRelease() (ok bool, err error)

	GripperLClose() (ok bool, err error)
	GripperRClose() (ok bool, err error)
	GripperLOpen() (ok bool, err error)
	GripperROpen() (ok bool, err error)

	HandlightL(on bool) (ok bool, err error)
	HandlightR(on bool) (ok bool, err error)
	HandlightBoth(on bool) (ok bool, err error)

	HandtoolLEject() (ok bool, err error)
	HandtoolREject() (ok bool, err error)
	HandtoolLAttach() (ok bool, err error)
	HandtoolRAttach() (ok bool, err error)
}

// BaseHands provides the generic DIO plumbing shared by the hand
// variants, and fails every gesture with ErrNotImplemented for derived
// types to override.
type BaseHands struct {
	Writer *dio.Writer
}

var _ Hands = (*BaseHands)(nil)

// NewBaseHands wires the hand plumbing to the robot's hardware access.
// The access collaborator is set once here and never rebound.
func NewBaseHands(parent dio.HardwareAccess) (bh *BaseHands, err error) {
	writer, err := dio.NewWriter(parent)
	if err != nil {
		return
	}

	bh = &BaseHands{Writer: writer}

	return
}

// initChannels returns the physically hand-reserved channels 17..32.
func initChannels() (channels []int) {
	for i := INIT_FIRST; i <= INIT_LAST; i++ {
		channels = append(channels, i)
	}
	return
}

// InitDIO claims every hand-reserved channel and pads it with the safe
// fill. Nothing is set explicitly; the asserted fill is what keeps the
// fail-open tool changers holding an attached tool through init.
func (bh *BaseHands) InitDIO() (ok bool) {
	return bh.Writer.Write(nil, initChannels(), INIT_SAFE_FILL)
}

func (bh *BaseHands) AirhandLDrawin() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) AirhandRDrawin() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) AirhandLKeep() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) AirhandRKeep() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) AirhandLRelease() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) AirhandRRelease() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) GripperLClose() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) GripperRClose() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) GripperLOpen() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) GripperROpen() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) HandlightL(on bool) (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) HandlightR(on bool) (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) HandlightBoth(on bool) (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) HandtoolLEject() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) HandtoolREject() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) HandtoolLAttach() (ok bool, err error) {
	err = ErrNotImplemented
	return
}

func (bh *BaseHands) HandtoolRAttach() (ok bool, err error) {
	err = ErrNotImplemented
	return
}
