// Package source loads Ultraviolet source files and maps the character
// offsets the lexer/parser/ast packages work in back to human-facing
// line/column positions. Offsets are rune indices, never byte indices, so
// diagnostics stay accurate for non-ASCII source.
package source

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// File holds loaded source text together with the line-start table used to
// resolve character offsets to line/column pairs.
type File struct {
	Name  string
	runes []rune

	// lineStarts[i] is the character offset of the first rune on line i+1
	// (1-based lines). lineStarts[0] is always 0.
	lineStarts []int
}

// Load reads a source file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return FromString(path, string(data)), nil
}

// FromString builds a File directly from in-memory text, named by name.
func FromString(name, text string) *File {
	runes := []rune(text)
	starts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &File{Name: name, runes: runes, lineStarts: starts}
}

// Text returns the file's full source text.
func (f *File) Text() string {
	return string(f.runes)
}

// Len returns the number of characters (runes) in the file.
func (f *File) Len() int {
	return len(f.runes)
}

// Position converts a 0-based character offset into a 1-based (line, column)
// pair, binary-searching the line-start table built at load time.
func (f *File) Position(charOffset int) (line, column int) {
	if charOffset < 0 {
		charOffset = 0
	}
	if charOffset > len(f.runes) {
		charOffset = len(f.runes)
	}
	// Largest i such that lineStarts[i] <= charOffset.
	i := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > charOffset
	}) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, charOffset - f.lineStarts[i] + 1
}

// LineText returns the full (untrimmed) text of the given 1-based line
// number, without its trailing newline.
func (f *File) LineText(line int) string {
	if line < 1 || line > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[line-1]
	end := len(f.runes)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line] - 1 // exclude the newline itself
	}
	if end < start {
		end = start
	}
	return string(f.runes[start:end])
}

// Fingerprint returns a content-addressed identity for the loaded source,
// used by the CLI's `uvc ast --cache` path to decide whether a cached CBOR
// AST dump is still valid for this text.
func (f *File) Fingerprint() string {
	sum := blake2b.Sum256([]byte(string(f.runes)))
	return fmt.Sprintf("%x", sum)
}
