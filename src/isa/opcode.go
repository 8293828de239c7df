package isa

// Opcode is the 7-bit function field held in the top of the opcode word.
type Opcode uint8

const (
	OpcodeConfig         Opcode = 0
	OpcodeMvin2          Opcode = 1
	OpcodeMvin1          Opcode = 2
	OpcodeMvout          Opcode = 3
	OpcodeComputeAndFlip Opcode = 4
	OpcodeComputeAndStay Opcode = 5
	OpcodePreload        Opcode = 6
	OpcodeFlush          Opcode = 7
	OpcodeMvin3          Opcode = 14
)

// Family groups opcodes that share a field layout.
type Family int

const (
	FamilyInvalid Family = iota
	FamilyConfig
	FamilyMvin
	FamilyMvout
	FamilyCompute
	FamilyPreload
	FamilyFlush
)

// Families lists every decodable family in opcode order.
var Families = []Family{
	FamilyConfig,
	FamilyMvin,
	FamilyMvout,
	FamilyCompute,
	FamilyPreload,
	FamilyFlush,
}

func (f Family) String() string {
	switch f {
	case FamilyConfig:
		return "config"
	case FamilyMvin:
		return "mvin"
	case FamilyMvout:
		return "mvout"
	case FamilyCompute:
		return "compute"
	case FamilyPreload:
		return "preload"
	case FamilyFlush:
		return "flush"
	default:
		return "invalid"
	}
}

// FamilyFromOpcode maps an opcode to its family. Unknown opcodes map to
// FamilyInvalid.
func FamilyFromOpcode(op Opcode) Family {
	switch op {
	case OpcodeConfig:
		return FamilyConfig
	case OpcodeMvin1, OpcodeMvin2, OpcodeMvin3:
		return FamilyMvin
	case OpcodeMvout:
		return FamilyMvout
	case OpcodeComputeAndFlip, OpcodeComputeAndStay:
		return FamilyCompute
	case OpcodePreload:
		return FamilyPreload
	case OpcodeFlush:
		return FamilyFlush
	default:
		return FamilyInvalid
	}
}
