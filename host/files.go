package host

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Files loads script lines from a directory, or from an fs.FS when set.
type Files struct {
	Root string // Directory for relative names.
	FS   fs.FS  // If set, names are resolved in FS instead of Root.
}

// Dir returns a line source rooted at a directory.
func Dir(root string) *Files {
	return &Files{Root: root}
}

// ReadLines returns the lines of a named file.
func (fl *Files) ReadLines(name string) (lines []string, err error) {
	var data []byte
	if fl.FS != nil {
		data, err = fs.ReadFile(fl.FS, filepath.ToSlash(name))
	} else {
		path := name
		if !filepath.IsAbs(path) && len(fl.Root) != 0 {
			path = filepath.Join(fl.Root, name)
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		err = errors.Wrapf(err, "read %v", name)
		return
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = errors.Wrapf(scanner.Err(), "scan %v", name)
	return
}
