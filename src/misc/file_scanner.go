package misc

import "os"

// FileScanner opens a trace file for streaming. The caller owns the returned
// file between Open and Close.
type FileScanner struct {
	path string
	file *os.File
}

func (this *FileScanner) Init(path string) {
	this.path = path
}

func (this *FileScanner) Open() *os.File {
	file, err := os.Open(this.path)
	if err != nil {
		panic(err)
	}

	this.file = file
	return file
}

func (this *FileScanner) Close() {
	if this.file == nil {
		return
	}

	if err := this.file.Close(); err != nil {
		panic(err)
	}
	this.file = nil
}
