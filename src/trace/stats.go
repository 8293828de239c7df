package trace

import (
	"errors"
	"fmt"

	"gemminiTrace/src/isa"
)

// Stats records per-pass counters for lines, tags and interval coverage.
type Stats struct {
	Lines    int64
	Skipped  int64
	Rejected int64

	Tags           int64
	DecodeFailures int64
	TagsPerFamily  map[isa.Family]int64

	Intervals        int64
	PendingIntervals int64
	NegativeSpans    int64
	MemoryCycles     int64
	ComputeCycles    int64
	OtherCycles      int64

	HasSpan   bool
	SpanStart int64
	SpanEnd   int64
}

func (s *Stats) Reset() {
	*s = Stats{}
}

func (s *Stats) countTag(tag *Tag) {
	if s.TagsPerFamily == nil {
		s.TagsPerFamily = make(map[isa.Family]int64)
	}

	s.Tags++
	if tag.Err != nil {
		s.DecodeFailures++
	}
	s.TagsPerFamily[tag.Family()]++
}

func (s *Stats) collectIntervals(tags []*Tag) {
	for _, tag := range tags {
		if tag.Err != nil {
			continue
		}

		interval, ok, err := tag.Interval()
		if errors.Is(err, isa.ErrMissingStageEvent) {
			s.PendingIntervals++
			continue
		}
		if err != nil || !ok {
			continue
		}

		s.addInterval(interval)
	}
}

func (s *Stats) addInterval(interval isa.Interval) {
	s.Intervals++
	if interval.Duration < 0 {
		s.NegativeSpans++
	}

	switch interval.WorkType {
	case isa.WorkTypeMemory:
		s.MemoryCycles += interval.Duration
	case isa.WorkTypeCompute:
		s.ComputeCycles += interval.Duration
	default:
		s.OtherCycles += interval.Duration
	}

	s.extendSpan(interval.Start, interval.End())
}

func (s *Stats) extendSpan(start int64, end int64) {
	if end < start {
		start, end = end, start
	}

	if !s.HasSpan {
		s.HasSpan = true
		s.SpanStart = start
		s.SpanEnd = end
		return
	}

	if start < s.SpanStart {
		s.SpanStart = start
	}
	if end > s.SpanEnd {
		s.SpanEnd = end
	}
}

// Accumulate merges the counters of another pass.
func (s *Stats) Accumulate(other Stats) {
	s.Lines += other.Lines
	s.Skipped += other.Skipped
	s.Rejected += other.Rejected
	s.Tags += other.Tags
	s.DecodeFailures += other.DecodeFailures

	if len(other.TagsPerFamily) > 0 && s.TagsPerFamily == nil {
		s.TagsPerFamily = make(map[isa.Family]int64)
	}
	for family, count := range other.TagsPerFamily {
		s.TagsPerFamily[family] += count
	}

	s.Intervals += other.Intervals
	s.PendingIntervals += other.PendingIntervals
	s.NegativeSpans += other.NegativeSpans
	s.MemoryCycles += other.MemoryCycles
	s.ComputeCycles += other.ComputeCycles
	s.OtherCycles += other.OtherCycles

	if other.HasSpan {
		s.extendSpan(other.SpanStart, other.SpanEnd)
	}
}

// Span returns the cycles between the earliest start and the latest end.
func (s *Stats) Span() int64 {
	if !s.HasSpan {
		return 0
	}
	return s.SpanEnd - s.SpanStart
}

func (s *Stats) ToLines() []string {
	lines := []string{
		fmt.Sprintf("Trace_lines_total: %d", s.Lines),
		fmt.Sprintf("Trace_lines_skipped: %d", s.Skipped),
		fmt.Sprintf("Trace_lines_rejected: %d", s.Rejected),
		fmt.Sprintf("Trace_tags_total: %d", s.Tags),
		fmt.Sprintf("Trace_decode_failures: %d", s.DecodeFailures),
	}

	for _, family := range isa.Families {
		lines = append(lines, fmt.Sprintf("Trace_tags_%s: %d", family, s.TagsPerFamily[family]))
	}

	lines = append(lines,
		fmt.Sprintf("Trace_intervals_total: %d", s.Intervals),
		fmt.Sprintf("Trace_intervals_pending: %d", s.PendingIntervals),
		fmt.Sprintf("Trace_intervals_negative: %d", s.NegativeSpans),
		fmt.Sprintf("Trace_memory_cycles: %d", s.MemoryCycles),
		fmt.Sprintf("Trace_compute_cycles: %d", s.ComputeCycles),
		fmt.Sprintf("Trace_other_cycles: %d", s.OtherCycles),
		fmt.Sprintf("Trace_span_cycles: %d", s.Span()),
	)

	return lines
}
