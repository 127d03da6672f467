// Package parser turns D source text into a tree of entities without
// needing a full grammar for the language. It tolerates malformed input by
// design: the reducer that consumes this tree routinely feeds it source it
// is itself in the process of breaking.
package parser
