package parser

import (
	"snoot/internal/sexpr"
	"snoot/internal/source"
	"snoot/internal/token"
)

// frame is one level of the scope stack. The bottom frame is the global
// scope; every other frame is a list waiting for its closer.
type frame struct {
	global   bool
	bracket  token.Bracket
	opening  token.Token
	children []sexpr.Node
}

// ScopeStack is the parse automaton state: a global frame at the bottom and
// one frame per currently open list above it.
type ScopeStack struct {
	file   *source.File
	frames []frame
}

func NewScopeStack(file *source.File) *ScopeStack {
	return &ScopeStack{
		file:   file,
		frames: []frame{{global: true}},
	}
}

// Depth returns the number of open lists.
func (s *ScopeStack) Depth() int {
	return len(s.frames) - 1
}

// Open pushes a frame for a list started by tok.
func (s *ScopeStack) Open(tok token.Token) {
	s.frames = append(s.frames, frame{bracket: tok.Bracket, opening: tok})
}

// Attach appends n to the innermost open frame.
func (s *ScopeStack) Attach(n sexpr.Node) {
	top := &s.frames[len(s.frames)-1]
	top.children = append(top.children, n)
}

// Close resolves the innermost frame. closer is the closing token read from
// input, or nil when input is exhausted. Diagnostics are appended to events.
//
// A closer of the wrong kind still closes the frame; the same closer is then
// offered to the next frame down, so it may close several lists but is
// reported once as WrongClosing (and once more as ExtraClosing if it reaches
// the global frame).
func (s *ScopeStack) Close(closer *token.Token, events *[]Event) {
	for {
		if len(s.frames) == 1 {
			if closer == nil {
				panic("parser: close without closer on the global frame")
			}
			*events = append(*events, ExtraClosing{Loc: source.FromToken(*closer, s.file)})
			return
		}

		top := s.frames[len(s.frames)-1]
		s.frames = s.frames[:len(s.frames)-1]

		if closer == nil {
			// синтетическая граница: последний токен последнего ребёнка
			boundary := top.opening
			if n := len(top.children); n > 0 {
				boundary = top.children[n-1].LastToken()
			}
			list := sexpr.NewList(s.file, top.bracket, top.opening, boundary, top.children)
			list.Unclosed = true
			s.Attach(list)
			*events = append(*events, UnclosedList{Loc: list.Loc})
			return
		}

		if closer.Bracket != top.bracket {
			*events = append(*events, WrongClosing{
				Opening:  source.FromToken(top.opening, s.file),
				Closing:  source.FromToken(*closer, s.file),
				Expected: top.bracket,
				Actual:   closer.Bracket,
			})
		}
		s.Attach(sexpr.NewList(s.file, top.bracket, top.opening, *closer, top.children))
		if closer.Bracket == top.bracket {
			return
		}
	}
}

// End force-closes every open frame, innermost first, and returns the roots.
// The stack is reset to a fresh global frame.
func (s *ScopeStack) End(events *[]Event) []sexpr.Node {
	for len(s.frames) > 1 {
		s.Close(nil, events)
	}
	roots := s.frames[0].children
	s.frames[0].children = nil
	return roots
}
