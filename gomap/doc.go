// Package gomap maps between Go values and data-file values.
//
// Struct fields are named by the `xrb` tag:
//
//	type Level struct {
//		Name   string    `xrb:"field=name"`
//		Spawn  []float32 `xrb:"field=spawn,omitempty"`
//		Glyph  byte      `xrb:"field=glyph,char"`
//		Secret string    `xrb:"-"`
//	}
//
// Untagged exported fields use their Go name. Integers map to Sint32 or
// Uint32 depending on signedness, floats to Float, byte fields tagged char
// to Character, slices and arrays to Array, and structs and string keyed
// maps to Structure. Types implementing IRFromer or IRToer take over their
// own conversion.
package gomap
