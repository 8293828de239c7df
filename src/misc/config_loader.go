package misc

import (
	"path/filepath"
	"strings"
)

type ConfigLoader struct {
	bin_dirpath     string
	report_filepath string
	visual_filepath string
	summary_width   int
}

func (this *ConfigLoader) Init(command_line_parser *CommandLineParser) {
	this.bin_dirpath = strings.TrimSpace(command_line_parser.StringParameter("bin_dirpath"))
	this.report_filepath = strings.TrimSpace(command_line_parser.StringParameter("report_filepath"))
	this.visual_filepath = strings.TrimSpace(command_line_parser.StringParameter("visual_filepath"))
	this.summary_width = int(command_line_parser.IntParameter("summary_width"))
}

func (this *ConfigLoader) BinDirpath() string {
	return this.bin_dirpath
}

// ReportFilepath is the text report destination. An explicit
// report_filepath wins; otherwise the report goes to bin_dirpath.
func (this *ConfigLoader) ReportFilepath() string {
	return this.resolve(this.report_filepath, "trace_report.txt")
}

// VisualFilepath is the interval export destination consumed by the
// timeline renderer.
func (this *ConfigLoader) VisualFilepath() string {
	return this.resolve(this.visual_filepath, "trace_intervals.json")
}

func (this *ConfigLoader) StatsFilepath() string {
	return this.resolve("", "trace_stats.txt")
}

func (this *ConfigLoader) ArgsFilepath() string {
	return this.resolve("", "args.txt")
}

func (this *ConfigLoader) OptionsFilepath() string {
	return this.resolve("", "options.txt")
}

// SummaryWidth is the rule width of the console summary; zero follows the
// terminal.
func (this *ConfigLoader) SummaryWidth() int {
	return this.summary_width
}

func (this *ConfigLoader) resolve(explicit string, filename string) string {
	if explicit != "" {
		return explicit
	}
	if this.bin_dirpath == "" {
		return ""
	}
	return filepath.Join(this.bin_dirpath, filename)
}
