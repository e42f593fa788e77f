// Package fuzztests houses Go fuzz harnesses for the reader pipeline
// (source -> lexer -> parser). They guard against panics, hangs and broken
// span invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через лексер и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
