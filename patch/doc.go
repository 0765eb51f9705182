// Package patch applies JSON patches to documents.
//
// Documents are projected to JSON with ir.ToJSON, patched with
// github.com/evanphx/json-patch and converted back. JSON does not carry
// the distinction between Sint32, Uint32 and Float numbers or between
// characters and strings, nor member order, so results are conformed to
// the original document: wherever a path of the result exists in the
// original, the original's leaf type and member order are kept.
package patch
