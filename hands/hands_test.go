package hands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/handio/dio"
)

func TestNewBaseHands_NoParent(t *testing.T) {
	assert := assert.New(t)

	bh, err := NewBaseHands(nil)
	assert.Nil(bh)
	assert.Equal(dio.ErrNoParent, err)
}

func TestBaseHands_NotImplemented(t *testing.T) {
	assert := assert.New(t)

	bh, err := NewBaseHands(&dio.Port{})
	assert.NoError(err)

	gestures := map[string]func() (bool, error){
		"AirhandLDrawin":  bh.AirhandLDrawin,
		"AirhandRDrawin":  bh.AirhandRDrawin,
		"AirhandLKeep":    bh.AirhandLKeep,
		"AirhandRKeep":    bh.AirhandRKeep,
		"AirhandLRelease": bh.AirhandLRelease,
		"AirhandRRelease": bh.AirhandRRelease,
		"GripperLClose":   bh.GripperLClose,
		"GripperRClose":   bh.GripperRClose,
		"GripperLOpen":    bh.GripperLOpen,
		"GripperROpen":    bh.GripperROpen,
		"HandtoolLEject":  bh.HandtoolLEject,
		"HandtoolREject":  bh.HandtoolREject,
		"HandtoolLAttach": bh.HandtoolLAttach,
		"HandtoolRAttach": bh.HandtoolRAttach,
	}

	for name, op := range gestures {
		ok, err := op()
		assert.False(ok, name)
		assert.Equal(ErrNotImplemented, err, name)
	}

	lights := map[string]func(bool) (bool, error){
		"HandlightL":    bh.HandlightL,
		"HandlightR":    bh.HandlightR,
		"HandlightBoth": bh.HandlightBoth,
	}

	for name, op := range lights {
		ok, err := op(true)
		assert.False(ok, name)
		assert.Equal(ErrNotImplemented, err, name)
	}

	assert.Equal("the method is not implemented in the derived class",
		ErrNotImplemented.Error())
}

func TestBaseHands_InitDIO(t *testing.T) {
	assert := assert.New(t)

	port := &dio.Port{}
	bh, err := NewBaseHands(port)
	assert.NoError(err)

	ok := bh.InitDIO()
	assert.True(ok)
	assert.Len(port.Calls, 1)

	dout := port.Calls[0].Dout
	mask := port.Calls[0].Mask
	owned := 0
	for n := 0; n < dio.DIO_WIDTH; n++ {
		// The fill is asserted everywhere; only 17..32 are owned.
		assert.Equal(INIT_SAFE_FILL, dout[n], "dout[%v]", n)
		if n+1 >= INIT_FIRST {
			owned++
			assert.Equal(dio.Level(1), mask[n], "mask[%v]", n)
		} else {
			assert.Equal(dio.DIO_MASK, mask[n], "mask[%v]", n)
		}
	}
	assert.Equal(16, owned)

	// The lower half of the register belongs to other subsystems and
	// must come through untouched.
	assert.Equal(uint32(0xffff0000), port.Pins)
}

func TestBaseHands_InitDIO_Unsupported(t *testing.T) {
	assert := assert.New(t)

	bh, err := NewBaseHands(&dio.Port{Unsupported: true})
	assert.NoError(err)

	assert.False(bh.InitDIO())
}
