// @lixen: #focus{content[catalog,art]}
// Package catalog holds the fixed set of artworks the parade draws from.
//
// Artworks are plain .txt files embedded at build time from art/. The file stem is
// the artwork name. Hidden files, directories and blank files are skipped.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed art/*.txt
var artFS embed.FS

const (
	artDir = "art"
	artExt = ".txt"
)

// Artwork is one named multi-line text block
type Artwork struct {
	Name  string
	Text  string
	Lines []string
}

// NewArtwork builds an artwork, splitting text into lines once
func NewArtwork(name, text string) Artwork {
	return Artwork{
		Name:  name,
		Text:  text,
		Lines: splitLines(text),
	}
}

// splitLines drops one trailing newline and CR of CRLF endings; empty text has no lines
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Catalog is an immutable, ordered set of artworks
type Catalog struct {
	arts []Artwork
}

// New creates a catalog from the given artworks in order
func New(arts ...Artwork) *Catalog {
	c := &Catalog{arts: make([]Artwork, len(arts))}
	copy(c.arts, arts)
	return c
}

// Load reads every .txt artwork in dir of fsys, sorted by file name
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read art directory %q: %w", dir, err)
	}

	arts := make([]Artwork, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, artExt) {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read artwork %q: %w", name, err)
		}

		text := string(data)
		if strings.TrimSpace(text) == "" {
			continue
		}
		arts = append(arts, NewArtwork(strings.TrimSuffix(name, artExt), text))
	}

	return &Catalog{arts: arts}, nil
}

var loadDefault = sync.OnceValue(func() *Catalog {
	c, err := Load(artFS, artDir)
	if err != nil {
		// Embedded files are fixed at build time
		panic(fmt.Sprintf("catalog: embedded art: %v", err))
	}
	return c
})

// Default returns the catalog of embedded artworks
func Default() *Catalog {
	return loadDefault()
}

// Len returns the number of artworks
func (c *Catalog) Len() int {
	return len(c.arts)
}

// At returns the artwork at index i
func (c *Catalog) At(i int) Artwork {
	return c.arts[i]
}

// Names returns artwork names in catalog order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.arts))
	for i, a := range c.arts {
		names[i] = a.Name
	}
	return names
}
