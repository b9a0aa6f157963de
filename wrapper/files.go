package wrapper

import (
	"fmt"
	"os"
	"sync"
)

// Files is exposed to script modules as the "files" global, it gives
// scripts append only access to their output files.
type Files struct {
	sync.Mutex
	ctx   *Context
	files map[string]*os.File
}

// NewFiles creates the files object for a script, errors are reported
// through ctx.
func NewFiles(ctx *Context) *Files {
	return &Files{
		ctx:   ctx,
		files: make(map[string]*os.File),
	}
}

func (f *Files) get(fileName string, flags int) (*os.File, error) {
	if fp, found := f.files[fileName]; found {
		return fp, nil
	}
	fp, err := os.OpenFile(fileName, flags, 0644)
	if err != nil {
		return nil, err
	}
	f.files[fileName] = fp
	return fp, nil
}

// Create truncates fileName, or creates it if it doesn't exist.
func (f *Files) Create(fileName string) bool {
	f.Lock()
	defer f.Unlock()

	if fp, found := f.files[fileName]; found {
		fp.Close()
		delete(f.files, fileName)
	}

	if _, err := f.get(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY); err != nil {
		f.ctx.Error(fmt.Sprintf("can't create %s: %v", fileName, err))
		return false
	}
	return true
}

// Append appends text to fileName, the file is kept open until Close.
func (f *Files) Append(fileName, text string) bool {
	f.Lock()
	defer f.Unlock()

	fp, err := f.get(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY)
	if err == nil {
		_, err = fp.WriteString(text)
	}

	if err != nil {
		f.ctx.Error(fmt.Sprintf("can't write to %s: %v", fileName, err))
		return false
	}
	return true
}

// Close closes every file opened by the script.
func (f *Files) Close() error {
	f.Lock()
	defer f.Unlock()

	var firstErr error
	for name, fp := range f.files {
		if err := fp.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(f.files, name)
	}
	return firstErr
}

// Open returns the number of files currently open.
func (f *Files) Open() int {
	f.Lock()
	defer f.Unlock()
	return len(f.files)
}
