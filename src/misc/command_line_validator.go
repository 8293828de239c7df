package misc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type CommandLineValidator struct {
	command_line_parser *CommandLineParser
}

func (this *CommandLineValidator) Init(command_line_parser *CommandLineParser) {
	this.command_line_parser = command_line_parser
}

func (this *CommandLineValidator) Validate() {
	if this.command_line_parser.IntParameter("verbose") < 0 {
		err := errors.New("verbose < 0")
		panic(err)
	}

	device := this.command_line_parser.StringParameter("device")
	if _, ok := DeviceModeFromString(device); !ok {
		err := fmt.Errorf("device %s is not supported", device)
		panic(err)
	}

	trace_filepath := strings.TrimSpace(this.command_line_parser.StringParameter("trace_filepath"))
	if trace_filepath == "" {
		err := errors.New("trace_filepath is not set")
		panic(err)
	}

	if stat, stat_err := os.Stat(trace_filepath); os.IsNotExist(stat_err) {
		err := fmt.Errorf("trace_filepath %s does not exist", trace_filepath)
		panic(err)
	} else if stat_err == nil && stat.IsDir() {
		err := fmt.Errorf("trace_filepath %s is a directory", trace_filepath)
		panic(err)
	}

	bin_dirpath := strings.TrimSpace(this.command_line_parser.StringParameter("bin_dirpath"))
	if bin_dirpath != "" {
		if _, stat_err := os.Stat(bin_dirpath); os.IsNotExist(stat_err) {
			fmt.Println(bin_dirpath)

			err := errors.New("bin_dirpath does not exist")
			panic(err)
		}
	}

	for _, name := range []string{"report_filepath", "visual_filepath"} {
		path := strings.TrimSpace(this.command_line_parser.StringParameter(name))
		if path == "" {
			continue
		}

		dirpath := filepath.Dir(path)
		if _, stat_err := os.Stat(dirpath); os.IsNotExist(stat_err) {
			err := fmt.Errorf("%s directory %s does not exist", name, dirpath)
			panic(err)
		}
	}

	if this.command_line_parser.IntParameter("summary_width") < 0 {
		err := errors.New("summary_width < 0")
		panic(err)
	}
}
