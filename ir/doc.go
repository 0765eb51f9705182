// Package ir provides the value tree of XRB data files.
//
// # Values
//
// A [Value] is one of
//
//   - a leaf: [Boolean], [Sint32], [Uint32], [Float], [Character] or [String]
//   - a [*KeyPair], binding an identifier to a value
//   - an [*Array], an ordered homogeneous list
//   - a [*Structure], a set of uniquely keyed key pairs
//
// A data file's document is a [*Structure]. Containers own their children
// exclusively; a value must not be shared between two containers.
//
// # Homogeneity
//
// All elements of an array agree with the first on the triple
// ([ListRecursionLevel], [Value.Type], [UltimateType]). [Array.Append]
// refuses anything else with [ErrNonHomogeneous] and leaves the array as it
// was. Likewise [Structure.AddKeyPair] refuses a key already present with
// [ErrKeyCollision].
//
// # Paths
//
// Values are addressed with pipe delimited paths (see package
// [github.com/xrbengine/xrb/ir/path]):
//
//	v, err := ir.PathElementFloat(doc, "|map|entities|0|position|0")
//
// [Structure.SetPathElement] and its typed variants create missing
// containers along the path:
//
//	doc := ir.NewStructure()
//	err := doc.SetPathElementFloat("|map|entities|+|position|+", 1.0)
//
// Path failures are reported as [*PathError].
//
// # Conversions
//
// [ToJSON], [FromJSON], [ToAny] and [FromAny] project trees to and from
// JSON and plain Go values; [Equal], [Clone] and [Hash] compare, copy and
// fingerprint them.
package ir
