package render

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Greedy line wrapping for measurement. Paragraphs are split on normalized
// newlines, wrapped word by word, and words that alone exceed the limit are
// broken on grapheme cluster boundaries so multi-rune symbols stay intact.

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Wrap splits text into lines no wider than maxWidth when measured with f.
// A non-positive maxWidth disables wrapping and only honors hard breaks.
func Wrap(f *Font, text string, maxWidth float64) []string {
	text = normalizeNewlines(text)
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			// Preserve empty line as paragraph break.
			out = append(out, "")
			continue
		}
		out = append(out, wrapPara(f, para, maxWidth)...)
	}
	return out
}

func wrapPara(f *Font, para string, maxWidth float64) []string {
	var lines []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
	}

	for _, word := range strings.Split(para, " ") {
		candidate := word
		if cur.Len() > 0 {
			candidate = cur.String() + " " + word
		}
		if w, _ := f.MeasureString(candidate); w <= maxWidth {
			cur.Reset()
			cur.WriteString(candidate)
			continue
		}
		flush()
		if w, _ := f.MeasureString(word); w <= maxWidth {
			cur.WriteString(word)
			continue
		}
		// The word alone exceeds the limit; break it on grapheme clusters.
		for _, piece := range breakGraphemes(f, word, maxWidth) {
			lines = append(lines, piece)
		}
		if len(lines) > 0 {
			// Re-open the last piece so following words can join it.
			cur.WriteString(lines[len(lines)-1])
			lines = lines[:len(lines)-1]
		}
	}
	flush()
	if len(lines) == 0 {
		lines = append(lines, para)
	}
	return lines
}

// breakGraphemes splits word into maximal pieces fitting maxWidth, never
// splitting inside a grapheme cluster. A single cluster wider than the limit
// becomes its own line.
func breakGraphemes(f *Font, word string, maxWidth float64) []string {
	var pieces []string
	var cur strings.Builder

	g := uniseg.NewGraphemes(word)
	for g.Next() {
		cluster := g.Str()
		candidate := cur.String() + cluster
		if w, _ := f.MeasureString(candidate); w > maxWidth && cur.Len() > 0 {
			pieces = append(pieces, cur.String())
			cur.Reset()
		}
		cur.WriteString(cluster)
	}
	if cur.Len() > 0 {
		pieces = append(pieces, cur.String())
	}
	return pieces
}

// MeasureWrapped returns the block size of text wrapped to maxWidth: the
// widest produced line and lineCount times the line height.
func MeasureWrapped(f *Font, text string, maxWidth float64) (w, h float64) {
	lines := Wrap(f, text, maxWidth)
	for _, line := range lines {
		lw, _ := f.MeasureString(line)
		if lw > w {
			w = lw
		}
	}
	return w, float64(len(lines)) * f.LineHeightPx()
}
