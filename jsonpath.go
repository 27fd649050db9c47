// Package jsonpath implements a JSONPath "Proposal A" style query language
// for JSON documents, extended with a parent-axis selector ("^"), an
// identity/key selector ("~"), and embedded subpath selectors ("$..."/
// "@..." used where a selector is expected).
//
// A host document is consumed through the narrow jsonvalue.Value contract
// rather than an open interface{}; see the jsonvalue subpackage.
package jsonpath

import "github.com/CraftSpider/jsonpath-plus/jsonvalue"

// Query compiles path and, on success, evaluates it against data in one
// step, returning the matched values in order. It is a convenience for the
// common case; callers that evaluate the same path repeatedly should
// Compile once and reuse the *Path.
func Query(path string, data jsonvalue.Value) ([]jsonvalue.Value, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return p.Find(data), nil
}
