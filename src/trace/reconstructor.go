package trace

import (
	"bufio"
	"fmt"
	"io"

	"gemminiTrace/src/isa"
	"gemminiTrace/src/stage"
)

const maxLineBytes = 1 << 20

// DecodeFunc turns the raw instruction triple of a tag into a record.
type DecodeFunc func(raw isa.RawCommand) (isa.Instruction, error)

// LineError reports a well-formed line that could not be applied.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Result is the outcome of one pass. Tags keep first-seen order.
type Result struct {
	Tags       []*Tag
	Failures   []*Tag
	LineErrors []*LineError
	Skipped    int
	Stats      Stats

	index map[string]*Tag
}

func (this *Result) Lookup(name string) (*Tag, bool) {
	tag, found := this.index[name]
	return tag, found
}

func (this *Result) Len() int {
	return len(this.Tags)
}

// Reconstructor merges stage events of repeated tags. It is not safe for
// concurrent use.
type Reconstructor struct {
	decode DecodeFunc
	result *Result
	line   int
}

func (this *Reconstructor) Init() {
	this.InitWithDecoder(isa.DecodeRaw)
}

func (this *Reconstructor) InitWithDecoder(decode DecodeFunc) {
	if decode == nil {
		decode = isa.DecodeRaw
	}

	this.decode = decode
	this.line = 0
	this.result = &Result{
		Tags:       make([]*Tag, 0),
		Failures:   make([]*Tag, 0),
		LineErrors: make([]*LineError, 0),
		index:      make(map[string]*Tag),
	}
}

// Fini hands the accumulated result off. The reconstructor must be
// re-initialized before further use.
func (this *Reconstructor) Fini() *Result {
	result := this.result
	this.result = nil
	result.Stats.collectIntervals(result.Tags)
	return result
}

// AddLine parses and applies one raw trace line. Malformed lines are counted
// and skipped.
func (this *Reconstructor) AddLine(text string) {
	this.line++
	this.result.Stats.Lines++

	record, ok := ParseLine(text)
	if !ok {
		this.result.Skipped++
		this.result.Stats.Skipped++
		return
	}

	if err := this.Add(record); err != nil {
		this.result.LineErrors = append(this.result.LineErrors, &LineError{
			Line: this.line,
			Text: record.String(),
			Err:  err,
		})
		this.result.Stats.Rejected++
	}
}

// Add applies one parsed record. An error only concerns this record; the
// reconstructor stays usable.
func (this *Reconstructor) Add(record Record) error {
	name, err := stage.ParseID(record.StageID)
	if err != nil {
		return err
	}

	if tag, found := this.result.index[record.Tag]; found {
		tag.Stages.Set(name, record.Cycle)
		return nil
	}

	tag := &Tag{
		Name:   record.Tag,
		Raw:    record.Command,
		Stages: stage.NewCycles(),
	}
	tag.Stages.Set(name, record.Cycle)

	instruction, err := this.decode(record.Command)
	if err != nil {
		tag.Err = fmt.Errorf("tag %s: %w", record.Tag, err)
		this.result.Failures = append(this.result.Failures, tag)
	} else {
		tag.Instruction = instruction
	}

	this.result.Tags = append(this.result.Tags, tag)
	this.result.index[record.Tag] = tag
	this.result.Stats.countTag(tag)

	return nil
}

// Consume streams lines from reader until EOF.
func (this *Reconstructor) Consume(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		this.AddLine(scanner.Text())
	}

	return scanner.Err()
}

// Reconstruct runs a full pass over in-memory lines.
func Reconstruct(lines []string) *Result {
	reconstructor := new(Reconstructor)
	reconstructor.Init()

	for _, line := range lines {
		reconstructor.AddLine(line)
	}

	return reconstructor.Fini()
}
