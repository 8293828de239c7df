package trace

import (
	"encoding/json"
	"fmt"

	"gemminiTrace/src/stage"
)

// ReportLines renders every tag with its decoded command and stage events, in
// first-seen order.
func ReportLines(result *Result) []string {
	lines := make([]string, 0, 8*len(result.Tags))

	for _, tag := range result.Tags {
		lines = append(lines, fmt.Sprintf("[Tag]=%s", tag.Name))
		lines = append(lines, "[Cmd Info]=")

		if tag.Err != nil {
			lines = append(lines, fmt.Sprintf("\t\t[raw]=%s", tag.Raw.String()))
			lines = append(lines, fmt.Sprintf("\t\t[error]=%v", tag.Err))
		} else {
			lines = append(lines, fmt.Sprintf("\t\t[inst]=%s", tag.Instruction.Mnemonic()))
			for _, field := range tag.Instruction.Fields() {
				lines = append(lines, fmt.Sprintf("\t\t[%s]=%s", field.Key, field.Value))
			}
		}

		lines = append(lines, "")
		lines = append(lines, "[Stage Info]=")

		tag.Stages.Each(func(name stage.Name, cycle int64) {
			lines = append(lines, fmt.Sprintf("\t\t[%s]  %d", name, cycle))
		})

		lines = append(lines, "", "")
	}

	return lines
}

// VisualEntry is one bar of the timeline handed to an external renderer.
type VisualEntry struct {
	Tag      string `json:"tag"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	Start    int64  `json:"start"`
	Duration int64  `json:"duration"`
}

// VisualData lists the drawable intervals. Tags without an interval, with a
// missing endpoint or with a decode failure are left out.
func VisualData(result *Result) []VisualEntry {
	entries := make([]VisualEntry, 0, len(result.Tags))

	for _, tag := range result.Tags {
		interval, ok, err := tag.Interval()
		if err != nil || !ok {
			continue
		}

		entries = append(entries, VisualEntry{
			Tag:      tag.Name,
			Type:     interval.WorkType.String(),
			Label:    tag.Label(),
			Start:    interval.Start,
			Duration: interval.Duration,
		})
	}

	return entries
}

func MarshalVisualData(result *Result) ([]byte, error) {
	manifest := map[string]interface{}{
		"intervals": VisualData(result),
	}

	return json.MarshalIndent(manifest, "", "  ")
}
