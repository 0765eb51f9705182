// Package parse parses XRB data files into ir values.
//
// # Usage
//
//	// Parse a document: key value pairs forming the root structure
//	doc, err := parse.ParseString(`speed 1.5; name "ogre";`)
//	if err != nil {
//	    return err
//	}
//
//	// Parse a single value
//	v, err := parse.ParseValue([]byte(`[+1, -2]`))
//
//	// Load a content file, logging and discarding failures
//	doc := parse.Load("data/ogre.xrb", logger)
//
// Every failure matches ErrParse. Failures found by the tokenizer also
// unwrap to a *token.TokenizeErr carrying the position.
//
// # Related Packages
//
//   - github.com/xrbengine/xrb/ir - value tree
//   - github.com/xrbengine/xrb/encode - canonical printing
//   - github.com/xrbengine/xrb/token - tokenization
package parse
