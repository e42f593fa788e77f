package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo           Code = 1000
	LexNoMatch        Code = 1001
	LexUnclosedString Code = 1002

	// Парсерные
	SynInfo         Code = 2000
	SynUnclosedList Code = 2001
	SynExtraClosing Code = 2002
	SynWrongClosing Code = 2003

	// I/O
	IOLoadFileError Code = 4001

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:       "Unknown error",
		LexInfo:           "Lexical information",
		LexNoMatch:        "Unrecognized input",
		LexUnclosedString: "Unclosed string literal",
		SynInfo:           "Syntax information",
		SynUnclosedList:   "Unclosed list",
		SynExtraClosing:   "Extra list closing",
		SynWrongClosing:   "Mismatched list closing",
		IOLoadFileError:   "I/O load file error",
		ObsInfo:           "Observability information",
		ObsTimings:        "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
