package hands

import (
	"github.com/ezrec/handio/dio"
)

// Purpose-named channel assignments for the 05 generation hands.
const (
	DIO_HANDLIGHT_L = DIO_17
	DIO_HANDLIGHT_R = DIO_18
	// Fail-open tool changer valves; asserted holds the tool.
	DIO_TOOLCHANGER_L = DIO_19
	DIO_TOOLCHANGER_R = DIO_24

	DIO_GRIPPER_L_CLOSE = DIO_20
	DIO_GRIPPER_L_OPEN  = DIO_21
	DIO_GRIPPER_R_CLOSE = DIO_25
	DIO_GRIPPER_R_OPEN  = DIO_26

	DIO_AIRHAND_L_DRAWIN  = DIO_22
	DIO_AIRHAND_L_RELEASE = DIO_23
	DIO_AIRHAND_R_DRAWIN  = DIO_27
	DIO_AIRHAND_R_RELEASE = DIO_28
)

// Hands05 commands the 05 generation of end-effectors: pneumatic air
// hands, parallel grippers, hand lights, and pneumatic tool changers on
// both arms. Every gesture claims only the pins of its own actuator
// pair, so a left-hand command can never disturb the right hand, let
// alone another subsystem.
type Hands05 struct {
	*BaseHands
}

var _ Hands = (*Hands05)(nil)

// NewHands05 wires the 05 hands to the robot's hardware access.
func NewHands05(parent dio.HardwareAccess) (h *Hands05, err error) {
	bh, err := NewBaseHands(parent)
	if err != nil {
		return
	}

	h = &Hands05{BaseHands: bh}

	return
}

// valve commands one valve of a two-valve actuator pair on. Both pins
// of the pair are claimed so the sibling valve is driven off in the
// same write.
func (h *Hands05) valve(set int, pair []int) (ok bool, err error) {
	ok = h.Writer.Write([]int{set}, pair, dio.DIO_ASSIGN_OFF)
	return
}

// AirhandLDrawin starts suction on the left air hand.
func (h *Hands05) AirhandLDrawin() (ok bool, err error) {
	return h.valve(DIO_AIRHAND_L_DRAWIN,
		[]int{DIO_AIRHAND_L_DRAWIN, DIO_AIRHAND_L_RELEASE})
}

// AirhandRDrawin starts suction on the right air hand.
func (h *Hands05) AirhandRDrawin() (ok bool, err error) {
	return h.valve(DIO_AIRHAND_R_DRAWIN,
		[]int{DIO_AIRHAND_R_DRAWIN, DIO_AIRHAND_R_RELEASE})
}

// AirhandLKeep closes both left air hand valves, holding the current
// vacuum without drawing more.
func (h *Hands05) AirhandLKeep() (ok bool, err error) {
	ok = h.Writer.Write(nil,
		[]int{DIO_AIRHAND_L_DRAWIN, DIO_AIRHAND_L_RELEASE},
		dio.DIO_ASSIGN_OFF)
	return
}

// AirhandRKeep closes both right air hand valves, holding the current
// vacuum without drawing more.
func (h *Hands05) AirhandRKeep() (ok bool, err error) {
	ok = h.Writer.Write(nil,
		[]int{DIO_AIRHAND_R_DRAWIN, DIO_AIRHAND_R_RELEASE},
		dio.DIO_ASSIGN_OFF)
	return
}

// AirhandLRelease vents the left air hand, dropping whatever it holds.
func (h *Hands05) AirhandLRelease() (ok bool, err error) {
	return h.valve(DIO_AIRHAND_L_RELEASE,
		[]int{DIO_AIRHAND_L_DRAWIN, DIO_AIRHAND_L_RELEASE})
}

// AirhandRRelease vents the right air hand, dropping whatever it holds.
func (h *Hands05) AirhandRRelease() (ok bool, err error) {
	return h.valve(DIO_AIRHAND_R_RELEASE,
		[]int{DIO_AIRHAND_R_DRAWIN, DIO_AIRHAND_R_RELEASE})
}

// GripperLClose drives the left gripper closed.
func (h *Hands05) GripperLClose() (ok bool, err error) {
	return h.valve(DIO_GRIPPER_L_CLOSE,
		[]int{DIO_GRIPPER_L_CLOSE, DIO_GRIPPER_L_OPEN})
}

// GripperRClose drives the right gripper closed.
func (h *Hands05) GripperRClose() (ok bool, err error) {
	return h.valve(DIO_GRIPPER_R_CLOSE,
		[]int{DIO_GRIPPER_R_CLOSE, DIO_GRIPPER_R_OPEN})
}

// GripperLOpen drives the left gripper open.
func (h *Hands05) GripperLOpen() (ok bool, err error) {
	return h.valve(DIO_GRIPPER_L_OPEN,
		[]int{DIO_GRIPPER_L_CLOSE, DIO_GRIPPER_L_OPEN})
}

// GripperROpen drives the right gripper open.
func (h *Hands05) GripperROpen() (ok bool, err error) {
	return h.valve(DIO_GRIPPER_R_OPEN,
		[]int{DIO_GRIPPER_R_CLOSE, DIO_GRIPPER_R_OPEN})
}

// light commands a set of hand light pins on or off.
func (h *Hands05) light(on bool, pins []int) (ok bool, err error) {
	var set []int
	if on {
		set = pins
	}
	ok = h.Writer.Write(set, pins, dio.DIO_ASSIGN_OFF)
	return
}

// HandlightL switches the left hand light.
func (h *Hands05) HandlightL(on bool) (ok bool, err error) {
	return h.light(on, []int{DIO_HANDLIGHT_L})
}

// HandlightR switches the right hand light.
func (h *Hands05) HandlightR(on bool) (ok bool, err error) {
	return h.light(on, []int{DIO_HANDLIGHT_R})
}

// HandlightBoth switches both hand lights in a single write.
func (h *Hands05) HandlightBoth(on bool) (ok bool, err error) {
	return h.light(on, []int{DIO_HANDLIGHT_L, DIO_HANDLIGHT_R})
}

// HandtoolLEject releases the left tool changer. The valve is
// fail-open, so deasserting the hold pin is what drops the tool.
func (h *Hands05) HandtoolLEject() (ok bool, err error) {
	ok = h.Writer.Write(nil, []int{DIO_TOOLCHANGER_L}, dio.DIO_ASSIGN_OFF)
	return
}

// HandtoolREject releases the right tool changer.
func (h *Hands05) HandtoolREject() (ok bool, err error) {
	ok = h.Writer.Write(nil, []int{DIO_TOOLCHANGER_R}, dio.DIO_ASSIGN_OFF)
	return
}

// HandtoolLAttach asserts the left tool changer hold.
func (h *Hands05) HandtoolLAttach() (ok bool, err error) {
	ok = h.Writer.Write([]int{DIO_TOOLCHANGER_L},
		[]int{DIO_TOOLCHANGER_L}, dio.DIO_ASSIGN_OFF)
	return
}

// HandtoolRAttach asserts the right tool changer hold.
func (h *Hands05) HandtoolRAttach() (ok bool, err error) {
	ok = h.Writer.Write([]int{DIO_TOOLCHANGER_R},
		[]int{DIO_TOOLCHANGER_R}, dio.DIO_ASSIGN_OFF)
	return
}
