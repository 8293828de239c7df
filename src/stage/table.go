package stage

import (
	"errors"
	"fmt"
	"strconv"
)

// Name identifies one pipeline milestone reported by the simulator.
type Name string

const (
	Disable Name = "DISABLE"

	RobAlloc    Name = "ROB_ALLOC"
	RobIssueLd  Name = "ROB_ISSUE_LD"
	RobIssueEx  Name = "ROB_ISSUE_EX"
	RobIssueSt  Name = "ROB_ISSUE_ST"
	RobComplete Name = "ROB_COMPLETE"

	EnterLdCtrl Name = "ENTER_LD_CTRL"
	EnterExCtrl Name = "ENTER_EX_CTRL"
	EnterStCtrl Name = "ENTER_ST_CTRL"
	LeaveLdCtrl Name = "LEAVE_LD_CTRL"
	LeaveExCtrl Name = "LEAVE_EX_CTRL"
	LeaveStCtrl Name = "LEAVE_ST_CTRL"

	EnterDmaRead  Name = "ENTER_DMA_READ"
	EnterDmaWrite Name = "ENTER_DMA_WRITE"
	LeaveDmaRead  Name = "LEAVE_DMA_READ"
	LeaveDmaWrite Name = "LEAVE_DMA_WRITE"

	EnterSpadRead  Name = "ENTER_SPAD_READ"
	EnterSpadWrite Name = "ENTER_SPAD_WRITE"
	LeaveSpadRead  Name = "LEAVE_SPAD_READ"
	LeaveSpadWrite Name = "LEAVE_SPAD_WRITE"

	EnterMeshCtrl Name = "ENTER_MESH_CTRL"
	LeaveMeshCtrl Name = "LEAVE_MESH_CTRL"

	EnterDelMesh Name = "ENTER_DEL_MESH"
	LeaveDelMesh Name = "LEAVE_DEL_MESH"

	LdCtrlExecute Name = "LD_CTRL_EXECUTE"
	ExCtrlExecute Name = "EX_CTRL_EXECUTE"
	StCtrlExecute Name = "ST_CTRL_EXECUTE"
)

// ErrUnknownStageID is returned when a stage-event id falls outside the table.
var ErrUnknownStageID = errors.New("unknown stage id")

// table is indexed by the stage-event id emitted in the trace. It is never
// written after package initialization.
var table = [...]Name{
	Disable,

	RobAlloc,
	RobIssueLd,
	RobIssueEx,
	RobIssueSt,
	RobComplete,

	EnterLdCtrl,
	EnterExCtrl,
	EnterStCtrl,
	LeaveLdCtrl,
	LeaveExCtrl,
	LeaveStCtrl,

	EnterDmaRead,
	EnterDmaWrite,
	LeaveDmaRead,
	LeaveDmaWrite,

	EnterSpadRead,
	EnterSpadWrite,
	LeaveSpadRead,
	LeaveSpadWrite,

	EnterMeshCtrl,
	LeaveMeshCtrl,

	EnterDelMesh,
	LeaveDelMesh,

	LdCtrlExecute,
	ExCtrlExecute,
	StCtrlExecute,
}

var ids = func() map[Name]int {
	lookup := make(map[Name]int, len(table))
	for id, name := range table {
		lookup[name] = id
	}
	return lookup
}()

// NumStages is the number of entries in the stage table.
const NumStages = len(table)

// Lookup resolves a stage-event id into its symbolic name.
func Lookup(id int) (Name, error) {
	if id < 0 || id >= len(table) {
		return "", fmt.Errorf("%w: %d (table has %d entries)", ErrUnknownStageID, id, len(table))
	}
	return table[id], nil
}

// ParseID resolves the decimal stage-event field of a trace line.
func ParseID(value string) (Name, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownStageID, value)
	}
	return Lookup(id)
}

// Names returns a copy of the table in id order.
func Names() []Name {
	names := make([]Name, len(table))
	copy(names, table[:])
	return names
}

// ID returns the table index of the name, or -1 when the name is not a stage.
func (n Name) ID() int {
	if id, ok := ids[n]; ok {
		return id
	}
	return -1
}

func (n Name) String() string {
	return string(n)
}
