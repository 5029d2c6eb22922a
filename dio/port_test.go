package dio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func levels(fill Level, set ...int) (vec []Level) {
	vec = make([]Level, DIO_WIDTH)
	for n := range vec {
		vec[n] = fill
	}
	for _, i := range set {
		vec[i-1] = 1
	}
	return
}

func TestPort_MaskedLatch(t *testing.T) {
	assert := assert.New(t)

	port := &Port{Pins: 0xaaaa0000}

	// Only channel 1 is owned; the rest of the register must survive
	// an all-on output vector.
	ok, err := port.WriteDigitalOutputWithMask(
		levels(DIO_ASSIGN_ON), levels(DIO_MASK, 1))
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(uint32(0xaaaa0001), port.Pins)

	// Deassert channel 18, owned alone.
	ok, err = port.WriteDigitalOutputWithMask(
		levels(DIO_ASSIGN_OFF), levels(DIO_MASK, 18))
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(uint32(0xaaa80001), port.Pins)
}

func TestPort_EmptyMask(t *testing.T) {
	assert := assert.New(t)

	port := &Port{Pins: 0x12345678}

	ok, err := port.WriteDigitalOutputWithMask(
		levels(DIO_ASSIGN_ON), levels(DIO_MASK))
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(uint32(0x12345678), port.Pins)
}

func TestPort_VectorWidth(t *testing.T) {
	assert := assert.New(t)

	port := &Port{}

	ok, err := port.WriteDigitalOutputWithMask(make([]Level, 16), levels(DIO_MASK))
	assert.False(ok)
	assert.Equal(ErrVectorWidth(16), err)

	ok, err = port.WriteDigitalOutputWithMask(levels(DIO_ASSIGN_OFF), nil)
	assert.False(ok)
	assert.Equal(ErrVectorWidth(0), err)
}

func TestPort_Unsupported(t *testing.T) {
	assert := assert.New(t)

	port := &Port{Unsupported: true}

	ok, err := port.WriteDigitalOutputWithMask(
		levels(DIO_ASSIGN_OFF), levels(DIO_MASK, 17))
	assert.False(ok)
	assert.Equal(ErrUnsupported, err)
	assert.Len(port.Calls, 0)
}

func TestPort_Reject(t *testing.T) {
	assert := assert.New(t)

	port := &Port{Reject: true, Pins: 0x4}

	ok, err := port.WriteDigitalOutputWithMask(
		levels(DIO_ASSIGN_ON), levels(DIO_MASK, 3))
	assert.NoError(err)
	assert.False(ok)
	assert.Equal(uint32(0x4), port.Pins)
}

func TestPort_Channel(t *testing.T) {
	assert := assert.New(t)

	port := &Port{Pins: 1 << 16}

	assert.Equal(DIO_ASSIGN_ON, port.Channel(17))
	assert.Equal(DIO_ASSIGN_OFF, port.Channel(16))
	assert.Equal(DIO_ASSIGN_OFF, port.Channel(0))
	assert.Equal(DIO_ASSIGN_OFF, port.Channel(33))
}
