package trace

import (
	"regexp"
	"strconv"
	"strings"

	"gemminiTrace/src/isa"
)

// linePattern is the simulator's trace syntax: tag/stage-cycle/inst-rs1-rs2.
// The tag must be a 0x-prefixed hex token; the register fields are decimal.
var linePattern = regexp.MustCompile(`^0x[0-9A-Fa-f]+/\d+-\d+/\d+-\d+-\d+$`)

var lineCleaner = strings.NewReplacer(" ", "", "\n", "", "\r", "", "\t", "")

// Record is one parsed trace line.
type Record struct {
	Tag     string
	StageID string
	Cycle   int64
	Command isa.RawCommand
}

// ParseLine strips whitespace and splits a well-formed line. Lines that do not
// match the trace syntax (annotations, banners) report false.
func ParseLine(line string) (Record, bool) {
	line = lineCleaner.Replace(line)
	if !linePattern.MatchString(line) {
		return Record{}, false
	}

	tokens := strings.Split(line, "/")
	event := strings.Split(tokens[1], "-")
	command := strings.Split(tokens[2], "-")

	cycle, err := strconv.ParseInt(event[1], 10, 64)
	if err != nil {
		return Record{}, false
	}

	return Record{
		Tag:     tokens[0],
		StageID: event[0],
		Cycle:   cycle,
		Command: isa.RawCommand{
			Inst: command[0],
			Rs1:  command[1],
			Rs2:  command[2],
		},
	}, true
}

func (r Record) String() string {
	return r.Tag + "/" + r.StageID + "-" + strconv.FormatInt(r.Cycle, 10) + "/" + r.Command.String()
}
