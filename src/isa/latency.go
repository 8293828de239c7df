package isa

import (
	"errors"
	"fmt"

	"gemminiTrace/src/stage"
)

var ErrMissingStageEvent = errors.New("missing stage event")

// WorkType says which lane of the timeline an interval is drawn on.
type WorkType int

const (
	WorkTypeNone WorkType = iota
	WorkTypeMemory
	WorkTypeCompute
)

func (w WorkType) String() string {
	switch w {
	case WorkTypeMemory:
		return "memory"
	case WorkTypeCompute:
		return "compute"
	default:
		return "none"
	}
}

func (w WorkType) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// Interval is the execution window of one instruction instance. Duration is
// not clamped: an inconsistent trace can yield a negative value.
type Interval struct {
	WorkType WorkType
	Start    int64
	Duration int64
}

func (i Interval) End() int64 {
	return i.Start + i.Duration
}

// Endpoints names the stage events that open and close the interval of a
// family. ok is false for families that are never drawn.
func Endpoints(family Family) (workType WorkType, begin stage.Name, end stage.Name, ok bool) {
	switch family {
	case FamilyMvin:
		return WorkTypeMemory, stage.LdCtrlExecute, stage.LeaveLdCtrl, true
	case FamilyMvout:
		return WorkTypeMemory, stage.StCtrlExecute, stage.RobComplete, true
	case FamilyCompute:
		return WorkTypeCompute, stage.EnterExCtrl, stage.LeaveExCtrl, true
	case FamilyFlush:
		return WorkTypeNone, stage.RobAlloc, stage.RobComplete, true
	default:
		return WorkTypeNone, "", "", false
	}
}

// Classify derives the interval of an instruction from its stage events. The
// bool result is false when the family is never drawn (Config, Preload). An
// ErrMissingStageEvent means the trace has not (yet) reported both endpoints.
func Classify(instr Instruction, stages *stage.Cycles) (Interval, bool, error) {
	if instr == nil {
		return Interval{}, false, nil
	}

	workType, begin, end, ok := Endpoints(instr.Family())
	if !ok {
		return Interval{}, false, nil
	}

	start, found := stages.Get(begin)
	if !found {
		return Interval{}, false, fmt.Errorf("%w: %s needs %s", ErrMissingStageEvent, instr.Mnemonic(), begin)
	}

	finish, found := stages.Get(end)
	if !found {
		return Interval{}, false, fmt.Errorf("%w: %s needs %s", ErrMissingStageEvent, instr.Mnemonic(), end)
	}

	return Interval{
		WorkType: workType,
		Start:    start,
		Duration: finish - start,
	}, true, nil
}
