// Package parser builds a forest of sexpr nodes from a token stream.
//
// Parsing never fails. Structural problems are repaired on the spot and
// recorded as events:
//
//   - an extra closing bracket at top level is dropped (ExtraClosing);
//   - a closing bracket of the wrong kind closes the innermost list anyway,
//     then is offered to the enclosing list as well (WrongClosing);
//   - lists still open at end of input are closed at their last child
//     (UnclosedList), innermost first.
//
// Open lists live on an explicit ScopeStack, so nesting depth is limited only
// by memory.
package parser
