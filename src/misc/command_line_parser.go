package misc

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type OptionType int

const (
	INT OptionType = iota
	STRING
)

type commandLineOption struct {
	option_type   OptionType
	name          string
	default_value string
	help_msg      string
}

type CommandLineParser struct {
	options map[string]*commandLineOption
	order   []string
	args    map[string]string
	extras  []string
}

func (this *CommandLineParser) Init() {
	this.options = make(map[string]*commandLineOption)
	this.order = make([]string, 0)
	this.args = make(map[string]string)
	this.extras = make([]string, 0)

	this.AddOption(STRING, "help", "", "print this help message")
}

func (this *CommandLineParser) AddOption(
	option_type OptionType,
	name string,
	default_value string,
	help_msg string,
) {
	if _, found := this.options[name]; found {
		err := fmt.Errorf("option %s is already added", name)
		panic(err)
	}

	if option_type == INT {
		if _, err := strconv.ParseInt(default_value, 10, 64); err != nil {
			err := fmt.Errorf("default value %s of option %s is not an integer", default_value, name)
			panic(err)
		}
	}

	this.options[name] = &commandLineOption{
		option_type:   option_type,
		name:          name,
		default_value: default_value,
		help_msg:      help_msg,
	}
	this.order = append(this.order, name)
}

// Parse consumes os.Args style arguments. Options are written --name=value or
// --name value; --help needs no value. Bare arguments are kept as extras.
func (this *CommandLineParser) Parse(args []string) {
	for i := 1; i < len(args); i++ {
		arg := args[i]

		if !strings.HasPrefix(arg, "--") {
			this.extras = append(this.extras, arg)
			continue
		}

		name := strings.TrimPrefix(arg, "--")
		value := ""
		has_value := false
		if pos := strings.Index(name, "="); pos >= 0 {
			value = name[pos+1:]
			name = name[:pos]
			has_value = true
		}

		option, found := this.options[name]
		if !found {
			err := fmt.Errorf("option %s is not supported", name)
			panic(err)
		}

		if name == "help" {
			this.args[name] = value
			continue
		}

		if !has_value {
			if i+1 >= len(args) {
				err := fmt.Errorf("option %s needs a value", name)
				panic(err)
			}
			i++
			value = args[i]
		}

		if option.option_type == INT {
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				err := fmt.Errorf("option %s expects an integer, got %s", name, value)
				panic(err)
			}
		}

		this.args[name] = value
	}
}

func (this *CommandLineParser) IsArgSet(name string) bool {
	_, found := this.args[name]
	return found
}

func (this *CommandLineParser) Extras() []string {
	return this.extras
}

func (this *CommandLineParser) IntParameter(name string) int64 {
	option := this.lookup(name)
	if option.option_type != INT {
		err := fmt.Errorf("option %s is not an integer option", name)
		panic(err)
	}

	value, err := strconv.ParseInt(this.value(option), 10, 64)
	if err != nil {
		panic(err)
	}

	return value
}

func (this *CommandLineParser) StringParameter(name string) string {
	option := this.lookup(name)
	if option.option_type != STRING {
		err := fmt.Errorf("option %s is not a string option", name)
		panic(err)
	}

	return this.value(option)
}

func (this *CommandLineParser) StringifyHelpMsgs() string {
	var builder strings.Builder

	builder.WriteString("usage: gemminiTrace [--option=value ...]\n")
	for _, name := range this.order {
		option := this.options[name]
		fmt.Fprintf(&builder, "  --%s (default: %q)\n\t%s\n", name, option.default_value, option.help_msg)
	}

	return builder.String()
}

// StringifyArgs returns the explicitly set arguments in command line form.
func (this *CommandLineParser) StringifyArgs() string {
	names := make([]string, 0, len(this.args))
	for name := range this.args {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("--%s=%s", name, this.args[name]))
	}

	return strings.Join(parts, " ")
}

// StringifyOptions returns every option with its effective value.
func (this *CommandLineParser) StringifyOptions() string {
	lines := make([]string, 0, len(this.order))
	for _, name := range this.order {
		if name == "help" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", name, this.value(this.options[name])))
	}

	return strings.Join(lines, "\n")
}

func (this *CommandLineParser) lookup(name string) *commandLineOption {
	option, found := this.options[name]
	if !found {
		err := errors.New("option " + name + " is not added")
		panic(err)
	}
	return option
}

func (this *CommandLineParser) value(option *commandLineOption) string {
	if value, found := this.args[option.name]; found {
		return value
	}
	return option.default_value
}
