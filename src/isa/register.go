package isa

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	OpcodeWordWidth = 32
	OperandWidth    = 64
)

var (
	ErrInvalidWidth   = errors.New("value does not fit register width")
	ErrInvalidDecimal = errors.New("register value is not a decimal integer")
)

// Register is a fixed-width unsigned bit vector. Bits are addressed
// most-significant-bit first: bit 0 is the MSB and bit width-1 is the LSB.
type Register struct {
	value uint64
	width int
}

func NewRegister(value uint64, width int) (Register, error) {
	if width != OpcodeWordWidth && width != OperandWidth {
		return Register{}, fmt.Errorf("%w: unsupported width %d", ErrInvalidWidth, width)
	}
	if width < 64 && value>>uint(width) != 0 {
		return Register{}, fmt.Errorf("%w: %d needs more than %d bits", ErrInvalidWidth, value, width)
	}

	return Register{value: value, width: width}, nil
}

// ParseRegister builds a register from its decimal string encoding.
func ParseRegister(decimal string, width int) (Register, error) {
	value, err := strconv.ParseUint(decimal, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Register{}, fmt.Errorf("%w: %s needs more than %d bits", ErrInvalidWidth, decimal, width)
		}
		return Register{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, decimal)
	}

	return NewRegister(value, width)
}

func (r Register) Width() int {
	return r.width
}

func (r Register) Uint() uint64 {
	return r.value
}

// Bits extracts the unsigned value held in the MSB-first range [start, end).
func (r Register) Bits(start int, end int) uint64 {
	if start < 0 || end > r.width || start > end {
		panic(fmt.Sprintf("bit range [%d, %d) outside %d-bit register", start, end, r.width))
	}

	length := end - start
	if length == 0 {
		return 0
	}

	shifted := r.value >> uint(r.width-end)
	if length == 64 {
		return shifted
	}
	return shifted & (uint64(1)<<uint(length) - 1)
}

// Tail extracts a range addressed from the end of the register: Tail(3, 2)
// is the bit one above the two lowest bits, i.e. bits [width-3, width-2).
func (r Register) Tail(fromEnd int, toEnd int) uint64 {
	return r.Bits(r.width-fromEnd, r.width-toEnd)
}

// Last extracts the n least significant bits.
func (r Register) Last(n int) uint64 {
	return r.Tail(n, 0)
}

func (r Register) String() string {
	return fmt.Sprintf("%0*b", r.width, r.value)
}
