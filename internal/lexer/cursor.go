package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"snoot/internal/source"
)

// Cursor представляет собой позицию в файле вместе с номером строки и колонки.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32 // 1-based, counts '\n' seen so far
	Col  uint32 // 1-based, in runes, reset on '\n'
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Line:  1,
		Col:   1,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekRune decodes the rune under the cursor. size is 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.File.Content[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.File.Content[c.Off:c.Limit])
}

// Bump moves past one rune, keeping line and column in step.
func (c *Cursor) Bump() rune {
	r, sz := c.PeekRune()
	if sz == 0 {
		return 0
	}
	c.Off += uint32(sz) // sz <= utf8.UTFMax
	if r == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return r
}

// Advance bumps runes until n bytes have been consumed or EOF is reached.
func (c *Cursor) Advance(n uint32) {
	end := c.Off + n
	for c.Off < end && !c.EOF() {
		c.Bump()
	}
}

// Rest returns the unread part of the input.
func (c *Cursor) Rest() string {
	return c.File.Content[c.Off:c.Limit]
}

// Mark это метка, чтобы быстро получать токен читаемого фрагмента
type Mark struct {
	Off  uint32
	Line uint32
	Col  uint32
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off, c.Line, c.Col = m.Off, m.Line, m.Col
}

// SpanFrom returns the span between the mark and the cursor.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.SpanAt(c.File, m.Off, c.Off)
}
