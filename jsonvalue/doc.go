// Native reconstructs object key order by sorting, because Go's
// map[string]any (what encoding/json decodes objects into) does not
// preserve the original document order. A host embedding its own decoder
// output — one that already tracks key order, such as a token-stream
// parser — should implement the Value interface directly instead of
// going through Native, and get true insertion order for free. The Obj
// builder in this package is the escape hatch for tests and callers who
// build documents by hand and need a specific, non-sorted order.
package jsonvalue
