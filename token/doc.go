// Package token provides cursor-based tokenization of lenient JSON text.
//
// The Tokenizer is an explicit index over a byte document rather than a
// stateful stream: Back is a cursor decrement, so the scanning operations
// (NextClean, NextString, NextLiteral) compose and test in isolation.
//
// Beyond strict JSON, the grammar accepts single-quoted strings and
// unquoted literals (bare words that are not reserved words, do not look
// like numbers, and contain none of the delimiter characters).
//
// # Related Packages
//
//   - github.com/laxjson/lax/parse - Parses text into ir values
//   - github.com/laxjson/lax/ir - Value representation
package token
