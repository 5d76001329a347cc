package text

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed TrueType/OpenType font shared by measurers and surfaces.
// Font is safe for concurrent use.
type Font struct {
	name string
	data []byte
	sfnt *sfnt.Font
}

// Default returns the embedded Go Regular font.
func Default() *Font {
	f, err := Parse("Go Regular", goregular.TTF)
	if err != nil {
		// goregular.TTF is a known-good embedded font.
		panic(err)
	}
	return f
}

// Parse parses font data. The data slice is copied.
func Parse(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFontParse, name, err)
	}
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	return &Font{name: name, data: dataCopy, sfnt: parsed}, nil
}

// LoadFile reads and parses a font file.
func LoadFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return Parse(filepath.Base(path), data)
}

// Name returns the name the font was loaded under.
func (f *Font) Name() string { return f.name }

// Data returns the raw font bytes. The slice must not be modified.
func (f *Font) Data() []byte { return f.data }

// SFNT returns the parsed font.
func (f *Font) SFNT() *sfnt.Font { return f.sfnt }
