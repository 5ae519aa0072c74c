package text

import (
	"fmt"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, Start+Length) into a source text.
type Span struct {
	Start  int
	Length int
}

// SpanFromBounds builds the span covering [start, end).
func SpanFromBounds(start, end int) Span {
	if end < start {
		end = start
	}
	return Span{Start: start, Length: end - start}
}

func (s Span) End() int { return s.Start + s.Length }

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End())
}

// Line describes one line of a SourceText. LengthIncludingBreak also counts the
// trailing line break (zero for the final line when it has none).
type Line struct {
	Start                int
	Length               int
	LengthIncludingBreak int
}

func (l Line) End() int { return l.Start + l.Length }

func (l Line) Span() Span { return Span{Start: l.Start, Length: l.Length} }

// Location is a 1-based line/column pair. Columns count runes.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// SourceText holds program text together with its line index.
type SourceText struct {
	text  string
	lines []Line
}

// NewSourceText indexes text. `\r\n`, `\r` and `\n` each terminate one line.
func NewSourceText(text string) *SourceText {
	return &SourceText{text: text, lines: parseLines(text)}
}

func (s *SourceText) String() string { return s.text }

func (s *SourceText) Len() int { return len(s.text) }

// Lines returns the line table. Callers must not modify it.
func (s *SourceText) Lines() []Line { return s.lines }

// Slice returns the text covered by span, clamped to the source bounds.
func (s *SourceText) Slice(span Span) string {
	start, end := clamp(span.Start, len(s.text)), clamp(span.End(), len(s.text))
	if end < start {
		return ""
	}
	return s.text[start:end]
}

// LineText returns the text of the line at index without its line break.
func (s *SourceText) LineText(index int) string {
	if index < 0 || index >= len(s.lines) {
		return ""
	}
	return s.Slice(s.lines[index].Span())
}

// LineIndex finds the line containing position with a binary search over the
// line starts. Positions outside the text clamp to the first or last line.
func (s *SourceText) LineIndex(position int) int {
	lower, upper := 0, len(s.lines)-1
	for lower <= upper {
		index := lower + (upper-lower)/2
		start := s.lines[index].Start
		switch {
		case start == position:
			return index
		case start < position:
			lower = index + 1
		default:
			upper = index - 1
		}
	}
	if lower == 0 {
		return 0
	}
	return lower - 1
}

// Location maps a byte offset to a 1-based line and column.
func (s *SourceText) Location(position int) Location {
	position = clamp(position, len(s.text))
	index := s.LineIndex(position)
	line := s.lines[index]
	offset := position
	if offset > line.End() {
		offset = line.End()
	}
	column := utf8.RuneCountInString(s.text[line.Start:offset]) + 1
	return Location{Line: index + 1, Column: column}
}

func parseLines(text string) []Line {
	lines := make([]Line, 0, 8)
	lineStart := 0
	position := 0
	for position < len(text) {
		width := lineBreakWidth(text, position)
		if width == 0 {
			position++
			continue
		}
		lines = append(lines, Line{
			Start:                lineStart,
			Length:               position - lineStart,
			LengthIncludingBreak: position - lineStart + width,
		})
		position += width
		lineStart = position
	}
	if position >= lineStart {
		lines = append(lines, Line{
			Start:                lineStart,
			Length:               position - lineStart,
			LengthIncludingBreak: position - lineStart,
		})
	}
	return lines
}

func lineBreakWidth(text string, index int) int {
	switch text[index] {
	case '\r':
		if index+1 < len(text) && text[index+1] == '\n' {
			return 2
		}
		return 1
	case '\n':
		return 1
	default:
		return 0
	}
}

func clamp(position, length int) int {
	if position < 0 {
		return 0
	}
	if position > length {
		return length
	}
	return position
}
