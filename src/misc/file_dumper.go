package misc

import (
	"bufio"
	"os"
)

type FileDumper struct {
	path string
}

func (this *FileDumper) Init(path string) {
	this.path = path
}

func (this *FileDumper) Path() string {
	return this.path
}

// WriteLines truncates the file and writes one line per entry.
func (this *FileDumper) WriteLines(lines []string) {
	file, err := os.Create(this.path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			panic(err)
		}
	}

	if err := writer.Flush(); err != nil {
		panic(err)
	}
}

func (this *FileDumper) WriteBytes(data []byte) {
	if err := os.WriteFile(this.path, data, 0o644); err != nil {
		panic(err)
	}
}
