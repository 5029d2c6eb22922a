package dio

// Level is the value of a single digital output line, or of a single
// mask position. Output polarity and masking are orthogonal bit-fields
// that happen to share a width.
type Level uint8

const (
	// DIO_ASSIGN_ON commands a digital output line on.
	DIO_ASSIGN_ON Level = 1
	// DIO_ASSIGN_OFF commands a digital output line off. The Feb 2014
	// assignment change redefined 0 from "ON" to "OFF"; every value
	// derived in this package is computed against this convention,
	// never hard-coded.
	DIO_ASSIGN_OFF Level = 0

	// DIO_MASK marks a register position as not owned by a write.
	// Masking is defined on the controller side, so "masked" is always
	// 0 regardless of the output polarity above.
	DIO_MASK Level = 0

	// DIO_WIDTH is the width of the shared DIO register in bits.
	// Channels are numbered 1..DIO_WIDTH; there is no channel 0.
	DIO_WIDTH = 32
)

// Legend returns the repeating 1..0 digit row that lines the 32 vector
// positions up with their 1-based channel numbers by eye.
func Legend() (legend []int) {
	legend = make([]int, DIO_WIDTH)
	for n := range legend {
		legend[n] = (n + 1) % 10
	}
	return
}
