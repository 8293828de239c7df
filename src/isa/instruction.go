package isa

import (
	"fmt"
	"strconv"
)

// Address is a DRAM or scratchpad address. It prints as hexadecimal.
type Address uint64

func (a Address) String() string {
	return fmt.Sprintf("0x%x", uint64(a))
}

// Field is one named, already formatted value of a decoded instruction.
type Field struct {
	Key   string
	Value string
}

// Instruction is a decoded accelerator command. The set of implementations is
// closed: Config, Mvin, Mvout, Compute, Preload and Flush.
type Instruction interface {
	Family() Family
	Mnemonic() string
	// Fields lists the decoded operands in report order.
	Fields() []Field

	isInstruction()
}

// ConfigKind is selected by the two lowest bits of rs1.
type ConfigKind int

const (
	ConfigEx ConfigKind = iota
	ConfigLoad
	ConfigStore
	ConfigNorm
)

func (k ConfigKind) String() string {
	switch k {
	case ConfigEx:
		return "ex"
	case ConfigLoad:
		return "mvin"
	case ConfigStore:
		return "mvout"
	default:
		return "norm"
	}
}

type Config struct {
	Kind ConfigKind

	// ConfigEx
	Dataflow   uint8
	Activation uint8
	ATranspose uint8
	BTranspose uint8

	// ConfigEx and ConfigLoad
	SpadStride uint16

	// ConfigLoad
	LoadType uint8

	// ConfigLoad and ConfigStore
	DramStride uint32
}

func (Config) Family() Family { return FamilyConfig }

func (c Config) Mnemonic() string {
	if c.Kind == ConfigLoad {
		return "config_mvin" + strconv.Itoa(int(c.LoadType))
	}
	return "config_" + c.Kind.String()
}

func (c Config) Fields() []Field {
	switch c.Kind {
	case ConfigEx:
		return []Field{
			uintField("dataflow", uint64(c.Dataflow)),
			uintField("act", uint64(c.Activation)),
			uintField("A_T", uint64(c.ATranspose)),
			uintField("B_T", uint64(c.BTranspose)),
			uintField("spad_stride", uint64(c.SpadStride)),
		}
	case ConfigLoad:
		return []Field{
			uintField("spad_stride", uint64(c.SpadStride)),
			uintField("dram_stride", uint64(c.DramStride)),
		}
	case ConfigStore:
		return []Field{
			uintField("dram_stride", uint64(c.DramStride)),
		}
	default:
		return nil
	}
}

// MvinVariant distinguishes the three load queues.
type MvinVariant int

const (
	Mvin1 MvinVariant = iota + 1
	Mvin2
	Mvin3
)

type Mvin struct {
	Variant  MvinVariant
	DramAddr Address
	SpadAddr Address
	NumCol   uint16
	NumRow   uint16
}

func (Mvin) Family() Family { return FamilyMvin }

func (m Mvin) Mnemonic() string {
	return "mvin" + strconv.Itoa(int(m.Variant))
}

func (m Mvin) Fields() []Field {
	return transferFields(m.DramAddr, m.SpadAddr, m.NumCol, m.NumRow)
}

type Mvout struct {
	DramAddr Address
	SpadAddr Address
	NumCol   uint16
	NumRow   uint16
}

func (Mvout) Family() Family { return FamilyMvout }

func (Mvout) Mnemonic() string { return "mvout" }

func (m Mvout) Fields() []Field {
	return transferFields(m.DramAddr, m.SpadAddr, m.NumCol, m.NumRow)
}

// Compute runs the systolic array on A (rs1) and B/D (rs2). Flip selects
// whether the preloaded weights are swapped in before the run.
type Compute struct {
	Flip bool

	SpadAddrA Address
	NumColA   uint16
	NumRowA   uint16

	SpadAddrBD Address
	NumColBD   uint16
	NumRowBD   uint16
}

func (Compute) Family() Family { return FamilyCompute }

func (c Compute) Mnemonic() string {
	if c.Flip {
		return "compute_and_flip"
	}
	return "compute_and_stay"
}

func (c Compute) Fields() []Field {
	return []Field{
		{Key: "spad_addr_A", Value: c.SpadAddrA.String()},
		uintField("num_col_A", uint64(c.NumColA)),
		uintField("num_row_A", uint64(c.NumRowA)),
		{Key: "spad_addr_BD", Value: c.SpadAddrBD.String()},
		uintField("num_col_BD", uint64(c.NumColBD)),
		uintField("num_row_BD", uint64(c.NumRowBD)),
	}
}

type Preload struct {
	SpadAddrD Address
	NumColD   uint16
	NumRowD   uint16

	SpadAddrC Address
	NumColC   uint16
	NumRowC   uint16
}

func (Preload) Family() Family { return FamilyPreload }

func (Preload) Mnemonic() string { return "preload" }

func (p Preload) Fields() []Field {
	return []Field{
		{Key: "spad_addr_D", Value: p.SpadAddrD.String()},
		uintField("num_col_D", uint64(p.NumColD)),
		uintField("num_row_D", uint64(p.NumRowD)),
		{Key: "spad_addr_C", Value: p.SpadAddrC.String()},
		uintField("num_col_C", uint64(p.NumColC)),
		uintField("num_row_C", uint64(p.NumRowC)),
	}
}

type Flush struct{}

func (Flush) Family() Family { return FamilyFlush }

func (Flush) Mnemonic() string { return "flush" }

func (Flush) Fields() []Field { return nil }

func (Config) isInstruction()  {}
func (Mvin) isInstruction()    {}
func (Mvout) isInstruction()   {}
func (Compute) isInstruction() {}
func (Preload) isInstruction() {}
func (Flush) isInstruction()   {}

func transferFields(dram Address, spad Address, numCol uint16, numRow uint16) []Field {
	return []Field{
		{Key: "dram_addr", Value: dram.String()},
		{Key: "spad_addr", Value: spad.String()},
		uintField("num_col", uint64(numCol)),
		uintField("num_row", uint64(numRow)),
	}
}

func uintField(key string, value uint64) Field {
	return Field{Key: key, Value: strconv.FormatUint(value, 10)}
}
