package trace

import (
	"gemminiTrace/src/isa"
	"gemminiTrace/src/stage"
)

// Tag collects every stage event reported for one dynamic instruction.
// Instruction is nil when the command could not be decoded; Err then holds
// the decode failure.
type Tag struct {
	Name        string
	Raw         isa.RawCommand
	Instruction isa.Instruction
	Err         error
	Stages      *stage.Cycles
}

// Label is the mnemonic drawn next to the interval.
func (t *Tag) Label() string {
	if t.Instruction == nil {
		return "unknown"
	}
	return t.Instruction.Mnemonic()
}

func (t *Tag) Family() isa.Family {
	if t.Instruction == nil {
		return isa.FamilyInvalid
	}
	return t.Instruction.Family()
}

// Interval classifies the tag's current stage events.
func (t *Tag) Interval() (isa.Interval, bool, error) {
	if t.Err != nil {
		return isa.Interval{}, false, t.Err
	}
	return isa.Classify(t.Instruction, t.Stages)
}
