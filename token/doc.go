// Package token provides tokenization of XRB data files.
//
// [Tokenize] turns a document into a slice of [Token]s, dropping white space
// and comments. Every token records its [Pos], and tokenization failures
// are reported as [*TokenizeErr] carrying the offending position.
//
// The package also holds the lexical rules shared by the parser, the
// printer and path parsing: identifiers ([IsIdent]), C style quoting of
// strings and characters ([Quote], [QuoteChar], [Unquote], [UnquoteChar])
// and numeric literal conversion ([ParseInteger], [ParseFloat],
// [FormatFloat]).
package token
