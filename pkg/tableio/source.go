package tableio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shapestone/shape-table/pkg/table"
)

var supportedExtensions = []string{"csv", "txt", "prn", "dif", "rtf"}

// SupportedExtensions returns the file extensions, without dots, that Supports accepts.
func SupportedExtensions() []string {
	return append([]string(nil), supportedExtensions...)
}

// Supports reports whether name carries one of the supported extensions,
// ignoring letter case.
func Supports(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for _, e := range supportedExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// OpenBytes decodes data and reads it with Open. A byte order mark selects
// UTF-8, UTF-16LE or UTF-16BE and is stripped; without one the data is read
// as UTF-8, with invalid sequences replaced by U+FFFD.
func OpenBytes(data []byte, opts Options) (*table.Table, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, &SourceError{Err: err}
	}
	return Open(string(decoded), opts)
}

// OpenReader reads r to the end and decodes it as OpenBytes does.
func OpenReader(r io.Reader, opts Options) (*table.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &SourceError{Err: err}
	}
	return OpenBytes(data, opts)
}

// OpenFile reads the named file as OpenBytes does.
func OpenFile(path string, opts Options) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return OpenBytes(data, opts)
}

// SaveWriter writes the text Save produces to w as UTF-8.
func SaveWriter(w io.Writer, t *table.Table, opts Options) error {
	text, err := Save(t, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return &SourceError{Err: err}
	}
	return nil
}

// SaveFile writes the text Save produces to the named file, replacing it.
func SaveFile(path string, t *table.Table, opts Options) error {
	text, err := Save(t, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return &SourceError{Path: path, Err: err}
	}
	return nil
}
