// Package fonts resolves font requests against a font database and builds
// composite fonts whose fallback chain covers a given piece of text.
//
// The entry point is the Cache: it memoizes resolved faces by family and
// weight, tracks per-face glyph coverage, and walks the platform fallback
// list only as far as needed. The composite Font it returns shapes and
// measures text through the shape package, picking the first font in its
// chain that covers each character.
package fonts
