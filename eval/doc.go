// Package eval evaluates expressions against documents.
//
// Expressions use github.com/expr-lang/expr. The members of the document
// are variables, converted with ir.ToAny, and these functions are
// available:
//
//	path("|map|entities|0")  the value at a path
//	has("|map|entities")     whether a path resolves
//	typeof("|speed")         the ir type name at a path
//	getenv("HOME")           an environment variable
//	tovalue("[+1, +2]")      a value parsed from data file text
//
// Further functions can be added with Register.
//
// Expand rewrites a document, replacing every string of the form
// "$[expression]" by the result of the expression.
//
// # Related Packages
//
//   - github.com/xrbengine/xrb/ir - value tree and path addressing
//   - github.com/xrbengine/xrb/parse - data file parsing
package eval
