// Package encode prints ir values.
//
// The text format is the canonical data file form read back by
// github.com/xrbengine/xrb/parse:
//
//	name "ogre";
//	speed 1.5;
//	offset -3;
//	path [+1, +2, +3];
//	bounds
//	{
//	    min [0.0, 0.0];
//	    max [4.0, 2.5];
//	};
//
// Arrays are printed on one line when their first element is a leaf and
// one element per line otherwise. The ast format dumps the tree with its
// types for debugging. The json and yaml formats are projections and do not
// keep the distinction between integer and character types.
//
// # Usage
//
//	encode.Encode(v, os.Stdout)
//	encode.EncodeDocument(doc, os.Stdout, encode.Indent(2))
//	encode.Encode(v, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
package encode
