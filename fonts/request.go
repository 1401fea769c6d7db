package fonts

import (
	"strings"

	"github.com/akiross/slint/fontdb"
)

const (
	// DefaultFontSize is the pixel size used when a request leaves it unset.
	DefaultFontSize = 12.0

	// DefaultFontWeight is the weight used when a request leaves it unset.
	DefaultFontWeight = fontdb.WeightNormal
)

// FontRequest describes the font wanted by a piece of text. Zero values
// mean "use the default": an empty family resolves to the database's
// sans-serif family, zero weight to DefaultFontWeight, zero pixel size to
// DefaultFontSize.
type FontRequest struct {
	Family        string
	Weight        fontdb.Weight
	PixelSize     float64
	LetterSpacing float64
}

func (r FontRequest) weightOrDefault() fontdb.Weight {
	if r.Weight == 0 {
		return DefaultFontWeight
	}
	return r.Weight
}

// requestKey is the cache identity of a request. Pixel size and letter
// spacing are pure scaling concerns and deliberately not part of it: one
// loaded face serves every size.
type requestKey struct {
	family string // lowercased
	weight fontdb.Weight
}

func (r FontRequest) key() requestKey {
	return requestKey{
		family: strings.ToLower(r.Family),
		weight: r.weightOrDefault(),
	}
}
