// Package shape turns text into positioned glyphs.
//
// A Context owns parsed font faces and a pool of HarfBuzz shapers from
// go-text/typesetting. Faces are registered once and addressed by FontID
// afterwards; shaping a string against an ordered list of FontIDs picks,
// per character, the first font that covers it.
//
// All metrics returned by a Context are in design units unless a pixel
// size is part of the call; callers scale by pixelSize / Upem.
package shape
