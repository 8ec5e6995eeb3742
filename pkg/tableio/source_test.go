package tableio_test

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/text/encoding/unicode"

	"github.com/shapestone/shape-table/pkg/table"
	"github.com/shapestone/shape-table/pkg/tableio"
)

func TestSupports(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"thisFileDoesNotExist.csv", true},
		{"data.TXT", true},
		{"report.prn", true},
		{"sheet.dif", true},
		{"notes.rtf", true},
		{"dir/nested.file.Csv", true},
		{"image.tif", false},
		{"csv", false},
		{".", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tableio.Supports(tt.name); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	exts := tableio.SupportedExtensions()
	exts[0] = "changed"
	if tableio.SupportedExtensions()[0] != "csv" {
		t.Error("SupportedExtensions exposes internal state")
	}
}

func TestOpenBytesEncodings(t *testing.T) {
	const text = "\\,näme,v\nr1,Zoë,1\n"
	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(text)
	if err != nil {
		t.Fatal(err)
	}
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String(text)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"utf-8", []byte(text)},
		{"utf-8 bom", append([]byte("\xEF\xBB\xBF"), text...)},
		{"utf-16le bom", []byte(utf16le)},
		{"utf-16be bom", []byte(utf16be)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := tableio.OpenBytes(tt.data, tableio.DefaultOptions())
			if err != nil {
				t.Fatalf("OpenBytes() error = %v", err)
			}
			assertTable(t, tbl, []string{"näme", "v"}, []string{"r1"}, [][]any{{"Zoë", 1.0}})
		})
	}
}

func TestOpenReader(t *testing.T) {
	tbl, err := tableio.OpenReader(strings.NewReader("\\,a\nr,1\n"), tableio.DefaultOptions())
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	assertTable(t, tbl, []string{"a"}, []string{"r"}, [][]any{{1.0}})

	_, err = tableio.OpenReader(iotest.ErrReader(errors.New("boom")), tableio.DefaultOptions())
	var serr *tableio.SourceError
	if !errors.As(err, &serr) || !errors.Is(err, tableio.ErrSourceUnavailable) {
		t.Errorf("OpenReader() error = %v, want *SourceError", err)
	}
}

func TestOpenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thisFileDoesNotExist.csv")
	_, err := tableio.OpenFile(path, tableio.DefaultOptions())
	if !errors.Is(err, tableio.ErrSourceUnavailable) {
		t.Errorf("error = %v, want ErrSourceUnavailable", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
	if err != nil && !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the path", err)
	}
}

func TestSaveFileOpenFile(t *testing.T) {
	tbl := table.New()
	tbl.AppendColumns("x", "y")
	tbl.AppendRow("first")
	_ = tbl.Set(0, 0, 1.5)
	_ = tbl.Set(1, 0, "a,b")

	path := filepath.Join(t.TempDir(), "out.csv")
	opts := tableio.DefaultOptions()
	if err := tableio.SaveFile(path, tbl, opts); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	got, err := tableio.OpenFile(path, opts)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	assertTable(t, got, []string{"x", "y"}, []string{"first"}, [][]any{{1.5, "a,b"}})

	err = tableio.SaveFile(filepath.Join(t.TempDir(), "missing", "out.csv"), tbl, opts)
	if !errors.Is(err, tableio.ErrSourceUnavailable) {
		t.Errorf("SaveFile() into missing dir error = %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSaveWriter(t *testing.T) {
	tbl := table.New()
	tbl.AppendColumn("a")
	tbl.AppendRow("r")

	var buf bytes.Buffer
	if err := tableio.SaveWriter(&buf, tbl, tableio.DefaultOptions().WithRowDelimiter("\n")); err != nil {
		t.Fatalf("SaveWriter() error = %v", err)
	}
	if got, want := buf.String(), "\\,a\nr,\"\"\n"; got != want {
		t.Errorf("SaveWriter() wrote %q, want %q", got, want)
	}

	err := tableio.SaveWriter(failingWriter{}, tbl, tableio.DefaultOptions())
	if !errors.Is(err, tableio.ErrSourceUnavailable) {
		t.Errorf("SaveWriter() error = %v, want ErrSourceUnavailable", err)
	}
}
