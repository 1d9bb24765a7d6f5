package source

import (
	"golang.org/x/text/unicode/norm"
)

// Flags encodes what normalization was applied to an input.
type Flags uint8

const (
	// HadBOM indicates a UTF-8 BOM was stripped.
	HadBOM Flags = 1 << iota
	// NormalizedCRLF indicates \r\n sequences were rewritten to \n.
	NormalizedCRLF
	// Recomposed indicates NFC normalization changed the byte sequence.
	Recomposed
)

// Input is one expression plus an origin label for diagnostics.
// Content is normalized: BOM-free, \n line endings, NFC composed.
// Spans produced by the lexer index into Content.
type Input struct {
	Name    string
	Content []byte
	Flags   Flags
}

// New normalizes text and wraps it as an Input. The name is an origin
// label such as "<arg>", "<stdin>" or "file.txt:12".
func New(name, text string) *Input {
	content, flags := normalize([]byte(text))
	return &Input{Name: name, Content: content, Flags: flags}
}

// Text returns the normalized content as a string.
func (in *Input) Text() string {
	return string(in.Content)
}

// Slice returns the content covered by sp, clamped to valid bounds.
func (in *Input) Slice(sp Span) string {
	start, end := int(sp.Start), int(sp.End)
	if start > len(in.Content) {
		start = len(in.Content)
	}
	if end > len(in.Content) {
		end = len(in.Content)
	}
	if start > end {
		start = end
	}
	return string(in.Content[start:end])
}

func normalize(content []byte) ([]byte, Flags) {
	var flags Flags
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= HadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= NormalizedCRLF
	}
	if !norm.NFC.IsNormal(content) {
		content = norm.NFC.Bytes(content)
		flags |= Recomposed
	}
	return content, flags
}
