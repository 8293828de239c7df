package main

import (
	"fmt"
	"os"
	"strings"

	"gemminiTrace/src/misc"
	"gemminiTrace/src/trace"
)

func main() {
	command_line_parser := InitCommandLineParser()
	command_line_parser.Parse(os.Args)

	if command_line_parser.IsArgSet("help") {
		fmt.Printf("%s", command_line_parser.StringifyHelpMsgs())
		return
	}

	misc.ConfigureRuntime(command_line_parser)

	command_line_validator := new(misc.CommandLineValidator)
	command_line_validator.Init(command_line_parser)
	command_line_validator.Validate()

	config_loader := new(misc.ConfigLoader)
	config_loader.Init(command_line_parser)

	if args_filepath := config_loader.ArgsFilepath(); args_filepath != "" {
		args_file_dumper := new(misc.FileDumper)
		args_file_dumper.Init(args_filepath)
		args_file_dumper.WriteLines([]string{command_line_parser.StringifyArgs()})

		options_file_dumper := new(misc.FileDumper)
		options_file_dumper.Init(config_loader.OptionsFilepath())
		options_file_dumper.WriteLines([]string{command_line_parser.StringifyOptions()})
	}

	trace_filepath := command_line_parser.StringParameter("trace_filepath")
	misc.Logf(1, "translating %s (device %s)", trace_filepath, misc.RuntimeDeviceMode())

	result := Translate(trace_filepath)

	for _, line_err := range result.LineErrors {
		misc.Logf(2, "rejected %v", line_err)
	}
	for _, tag := range result.Failures {
		misc.Logf(2, "decode failed: %v", tag.Err)
	}

	if report_filepath := config_loader.ReportFilepath(); report_filepath != "" {
		report_file_dumper := new(misc.FileDumper)
		report_file_dumper.Init(report_filepath)
		report_file_dumper.WriteLines(trace.ReportLines(result))
		misc.Logf(1, "report written to %s", report_filepath)
	}

	if visual_filepath := config_loader.VisualFilepath(); visual_filepath != "" {
		data, err := trace.MarshalVisualData(result)
		if err != nil {
			panic(err)
		}

		visual_file_dumper := new(misc.FileDumper)
		visual_file_dumper.Init(visual_filepath)
		visual_file_dumper.WriteBytes(data)
		misc.Logf(1, "intervals written to %s", visual_filepath)
	}

	if stats_filepath := config_loader.StatsFilepath(); stats_filepath != "" {
		stats_file_dumper := new(misc.FileDumper)
		stats_file_dumper.Init(stats_filepath)
		stats_file_dumper.WriteLines(result.Stats.ToLines())
	}

	PrintSummary(result, config_loader.SummaryWidth())
}

// Translate streams the trace file through a reconstructor.
func Translate(trace_filepath string) *trace.Result {
	file_scanner := new(misc.FileScanner)
	file_scanner.Init(trace_filepath)

	file := file_scanner.Open()
	defer file_scanner.Close()

	reconstructor := new(trace.Reconstructor)
	reconstructor.Init()

	if err := reconstructor.Consume(file); err != nil {
		panic(err)
	}

	return reconstructor.Fini()
}

func PrintSummary(result *trace.Result, width int) {
	if width <= 0 {
		width = misc.TerminalWidth(os.Stdout, 0)
	}
	rule := strings.Repeat("=", width)

	if misc.IsInteractive(os.Stdout) {
		fmt.Println(rule)
	}

	for _, line := range result.Stats.ToLines() {
		fmt.Println(line)
	}

	if misc.IsInteractive(os.Stdout) {
		fmt.Println(rule)
	}
}

func InitCommandLineParser() *misc.CommandLineParser {
	command_line_parser := new(misc.CommandLineParser)
	command_line_parser.Init()

	// level 0: only prints the summary
	// level 1: level 0 + progress and output paths
	// level 2: level 1 + every rejected line and decode failure
	command_line_parser.AddOption(misc.INT, "verbose", "0", "verbosity of the translation")

	command_line_parser.AddOption(
		misc.STRING,
		"device",
		string(misc.DefaultDeviceMode()),
		"accelerator that produced the trace (gemmini)",
	)

	command_line_parser.AddOption(misc.STRING, "trace_filepath", "", "path to the simulator trace")

	command_line_parser.AddOption(
		misc.STRING,
		"bin_dirpath",
		"",
		"directory for the report, interval and stats files (optional)",
	)
	command_line_parser.AddOption(
		misc.STRING,
		"report_filepath",
		"",
		"text report path (defaults to bin_dirpath/trace_report.txt)",
	)
	command_line_parser.AddOption(
		misc.STRING,
		"visual_filepath",
		"",
		"interval JSON path (defaults to bin_dirpath/trace_intervals.json)",
	)

	command_line_parser.AddOption(
		misc.INT,
		"summary_width",
		"0",
		"width of the console summary rule (0 follows the terminal)",
	)

	return command_line_parser
}
