// Package sexpr defines the tree produced by the parser: lists, bare atoms
// and quoted strings. Nodes own their children and tokens, hold no parent
// pointers, and are immutable once the parser returns them.
package sexpr
