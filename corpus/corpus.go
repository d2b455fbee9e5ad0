// Package corpus loads the reference datasets every compression scheme is
// measured against.
//
// A corpus is the concatenation of a fixed, ordered list of files. Its total
// length is checked against a known constant immediately after loading, so a
// truncated download, a line-ending translation or a wrong file set fails the
// run before any time is spent measuring.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hwjsnc/compbench/internal/hash"
)

// ErrUnexpectedSize is wrapped by Read when a corpus does not have its
// expected byte length.
var ErrUnexpectedSize = errors.New("corpus has unexpected size")

// Corpus is a named reference dataset. It must not be modified after
// construction; measurements share Data read-only.
type Corpus struct {
	Name string
	Data []byte
}

// SizeMB returns the corpus length in decimal megabytes, the unit all
// throughput figures are reported in.
func (c Corpus) SizeMB() float64 {
	return float64(len(c.Data)) / 1_000_000.0
}

// Digest returns the xxHash64 fingerprint of the corpus contents.
func (c Corpus) Digest() uint64 {
	return hash.Sum64(c.Data)
}

// Spec describes how to assemble one corpus from files under a base
// directory.
type Spec struct {
	// Name identifies the corpus in results.
	Name string
	// Files are paths relative to the base directory, in concatenation order.
	Files []string
	// Size is the exact expected total length in bytes.
	Size int
}

// Standard lists the reference corpora in their fixed enumeration order.
// Any change to the underlying files must update these sizes.
var Standard = []Spec{
	{
		Name: "canterbury",
		Files: []string{
			"canterbury/alice29.txt",
			"canterbury/asyoulik.txt",
			"canterbury/cp.html",
			"canterbury/fields.c",
			"canterbury/grammar.lsp",
			"canterbury/kennedy.xls",
			"canterbury/lcet10.txt",
			"canterbury/plrabn12.txt",
			"canterbury/ptt5",
			"canterbury/sum",
			"canterbury/xargs.1",
		},
		Size: 2_810_784,
	},
	{
		Name: "canterbury-large",
		Files: []string{
			"canterbury-large/E.coli",
			"canterbury-large/bible.txt",
			"canterbury-large/world192.txt",
		},
		Size: 11_159_482,
	},
	{
		Name: "silesia",
		Files: []string{
			"silesia/dickens",
			"silesia/mozilla",
			"silesia/mr",
			"silesia/nci",
			"silesia/ooffice",
			"silesia/osdb",
			"silesia/reymont",
			"silesia/samba",
			"silesia/sao",
			"silesia/webster",
			"silesia/xml",
			"silesia/x-ray",
		},
		Size: 211_938_580,
	},
}

// ReadData concatenates the contents of files, resolved relative to base,
// in list order. The error names the file that could not be opened or read.
func ReadData(base string, files []string) ([]byte, error) {
	var buf bytes.Buffer
	for _, name := range files {
		path := filepath.Join(base, name)
		if err := appendFile(&buf, path); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func appendFile(buf *bytes.Buffer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("couldn't open file %s: %w", path, err)
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
		buf.Grow(int(fi.Size()))
	}

	if _, err := io.Copy(buf, f); err != nil {
		return fmt.Errorf("couldn't read from file %s: %w", path, err)
	}

	return nil
}

// Read assembles every corpus in specs and checks each length as soon as it
// is loaded. Nothing is returned unless all corpora load and match.
func Read(base string, specs []Spec) ([]Corpus, error) {
	corpora := make([]Corpus, 0, len(specs))
	for _, spec := range specs {
		data, err := ReadData(base, spec.Files)
		if err != nil {
			return nil, fmt.Errorf("couldn't read %s corpus: %w", spec.Name, err)
		}
		if len(data) != spec.Size {
			return nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrUnexpectedSize, spec.Name, len(data), spec.Size)
		}
		corpora = append(corpora, Corpus{Name: spec.Name, Data: data})
	}

	return corpora, nil
}

// ReadCorpora loads the Standard corpora from base.
func ReadCorpora(base string) ([]Corpus, error) {
	return Read(base, Standard)
}
