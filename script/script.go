// Package script exposes the hand gesture contract to Starlark
// choreography files, for wiring verification and demos.
package script

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/handio/hands"
)

// Runner executes choreography scripts against a bound hand variant.
// Each gesture is a Starlark builtin returning the write result as a
// bool; a gesture the variant does not implement aborts the script with
// its error.
type Runner struct {
	Hands hands.Hands
}

// gesture wraps a no-argument gesture as a Starlark builtin.
func gesture(name string, op func() (bool, error)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0)
		if err != nil {
			return nil, err
		}
		ok, err := op()
		if err != nil {
			return nil, err
		}
		return starlark.Bool(ok), nil
	})
}

// light wraps a hand light gesture, taking an optional on argument that
// defaults to True.
func light(name string, op func(bool) (bool, error)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		on := true
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0, &on)
		if err != nil {
			return nil, err
		}
		ok, err := op(on)
		if err != nil {
			return nil, err
		}
		return starlark.Bool(ok), nil
	})
}

// builtins binds the gesture contract under the snake_case names the
// choreography scripts use.
func (run *Runner) builtins() (dict starlark.StringDict) {
	h := run.Hands

	dict = starlark.StringDict{
		"airhand_l_drawin":  gesture("airhand_l_drawin", h.AirhandLDrawin),
		"airhand_r_drawin":  gesture("airhand_r_drawin", h.AirhandRDrawin),
		"airhand_l_keep":    gesture("airhand_l_keep", h.AirhandLKeep),
		"airhand_r_keep":    gesture("airhand_r_keep", h.AirhandRKeep),
		"airhand_l_release": gesture("airhand_l_release", h.AirhandLRelease),
		"airhand_r_release": gesture("airhand_r_release", h.AirhandRRelease),

		"gripper_l_close": gesture("gripper_l_close", h.GripperLClose),
		"gripper_r_close": gesture("gripper_r_close", h.GripperRClose),
		"gripper_l_open":  gesture("gripper_l_open", h.GripperLOpen),
		"gripper_r_open":  gesture("gripper_r_open", h.GripperROpen),

		"handlight_l":    light("handlight_l", h.HandlightL),
		"handlight_r":    light("handlight_r", h.HandlightR),
		"handlight_both": light("handlight_both", h.HandlightBoth),

		"handtool_l_eject":  gesture("handtool_l_eject", h.HandtoolLEject),
		"handtool_r_eject":  gesture("handtool_r_eject", h.HandtoolREject),
		"handtool_l_attach": gesture("handtool_l_attach", h.HandtoolLAttach),
		"handtool_r_attach": gesture("handtool_r_attach", h.HandtoolRAttach),
	}

	dict["init_dio"] = gesture("init_dio", func() (bool, error) {
		return h.InitDIO(), nil
	})

	return
}

// Run executes the choreography in src against the bound hands. src
// follows Starlark's ExecFileOptions conventions: nil to read filename,
// or a string/[]byte/io.Reader of source text.
func (run *Runner) Run(filename string, src any) (err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, run.builtins())

	return
}
