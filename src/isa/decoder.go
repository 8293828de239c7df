package isa

import (
	"errors"
	"fmt"
)

var ErrUnrecognizedOpcode = errors.New("unrecognized opcode")

// RawCommand is the instruction triple exactly as it appears in a trace line:
// the opcode word and the two operand registers as decimal strings.
type RawCommand struct {
	Inst string
	Rs1  string
	Rs2  string
}

func (r RawCommand) String() string {
	return r.Inst + "-" + r.Rs1 + "-" + r.Rs2
}

// DecodeRaw parses the decimal triple into registers and decodes it.
func DecodeRaw(raw RawCommand) (Instruction, error) {
	inst, err := ParseRegister(raw.Inst, OpcodeWordWidth)
	if err != nil {
		return nil, fmt.Errorf("opcode word: %w", err)
	}

	rs1, err := ParseRegister(raw.Rs1, OperandWidth)
	if err != nil {
		return nil, fmt.Errorf("rs1: %w", err)
	}

	rs2, err := ParseRegister(raw.Rs2, OperandWidth)
	if err != nil {
		return nil, fmt.Errorf("rs2: %w", err)
	}

	return Decode(inst, rs1, rs2)
}

// OpcodeOf returns the function field of a 32-bit opcode word.
func OpcodeOf(inst Register) Opcode {
	return Opcode(inst.Bits(0, 7))
}

// Decode classifies the instruction by its opcode and extracts the
// family-specific fields from rs1 and rs2.
func Decode(inst Register, rs1 Register, rs2 Register) (Instruction, error) {
	if inst.Width() != OpcodeWordWidth {
		return nil, fmt.Errorf("%w: opcode word is %d bits", ErrInvalidWidth, inst.Width())
	}
	if rs1.Width() != OperandWidth || rs2.Width() != OperandWidth {
		return nil, fmt.Errorf("%w: operands are %d and %d bits", ErrInvalidWidth, rs1.Width(), rs2.Width())
	}

	op := OpcodeOf(inst)

	switch FamilyFromOpcode(op) {
	case FamilyConfig:
		return decodeConfig(rs1, rs2), nil
	case FamilyMvin:
		return decodeMvin(op, rs1, rs2), nil
	case FamilyMvout:
		return decodeMvout(rs1, rs2), nil
	case FamilyCompute:
		return decodeCompute(op, rs1, rs2), nil
	case FamilyPreload:
		return decodePreload(rs1, rs2), nil
	case FamilyFlush:
		return Flush{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedOpcode, op)
	}
}

func decodeConfig(rs1 Register, rs2 Register) Config {
	switch rs1.Last(2) {
	case 0:
		return Config{
			Kind:       ConfigEx,
			Dataflow:   uint8(rs1.Tail(3, 2)),
			Activation: uint8(rs1.Tail(4, 3)),
			ATranspose: uint8(rs1.Tail(9, 8)),
			BTranspose: uint8(rs1.Tail(10, 9)),
			SpadStride: uint16(rs1.Tail(32, 16)),
		}
	case 1:
		return Config{
			Kind:       ConfigLoad,
			LoadType:   uint8(rs1.Tail(5, 3)),
			SpadStride: uint16(rs1.Tail(32, 16)),
			DramStride: uint32(rs2.Last(32)),
		}
	case 2:
		return Config{
			Kind:       ConfigStore,
			DramStride: uint32(rs2.Last(32)),
		}
	default:
		return Config{Kind: ConfigNorm}
	}
}

// rs1 carries the DRAM address; rs2 packs rows, columns and the scratchpad
// address from MSB to LSB.
func decodeMvin(op Opcode, rs1 Register, rs2 Register) Mvin {
	variant := Mvin3
	switch op {
	case OpcodeMvin2:
		variant = Mvin2
	case OpcodeMvin1:
		variant = Mvin1
	}

	return Mvin{
		Variant:  variant,
		DramAddr: Address(rs1.Uint()),
		SpadAddr: Address(rs2.Last(32)),
		NumCol:   uint16(rs2.Tail(48, 32)),
		NumRow:   uint16(rs2.Tail(64, 48)),
	}
}

func decodeMvout(rs1 Register, rs2 Register) Mvout {
	return Mvout{
		DramAddr: Address(rs1.Uint()),
		SpadAddr: Address(rs2.Last(32)),
		NumCol:   uint16(rs2.Tail(48, 32)),
		NumRow:   uint16(rs2.Tail(64, 48)),
	}
}

func decodeCompute(op Opcode, rs1 Register, rs2 Register) Compute {
	return Compute{
		Flip:       op == OpcodeComputeAndFlip,
		SpadAddrA:  Address(rs1.Last(32)),
		NumColA:    uint16(rs1.Tail(48, 32)),
		NumRowA:    uint16(rs1.Tail(64, 48)),
		SpadAddrBD: Address(rs2.Last(32)),
		NumColBD:   uint16(rs2.Tail(48, 32)),
		NumRowBD:   uint16(rs2.Tail(64, 48)),
	}
}

func decodePreload(rs1 Register, rs2 Register) Preload {
	return Preload{
		SpadAddrD: Address(rs1.Last(32)),
		NumColD:   uint16(rs1.Tail(48, 32)),
		NumRowD:   uint16(rs1.Tail(64, 48)),
		SpadAddrC: Address(rs2.Last(32)),
		NumColC:   uint16(rs2.Tail(48, 32)),
		NumRowC:   uint16(rs2.Tail(64, 48)),
	}
}
