package textlayout

// HorizontalAlignment positions a line within the box width.
type HorizontalAlignment int

const (
	AlignmentLeft HorizontalAlignment = iota
	AlignmentCenter
	AlignmentRight
)

func (a HorizontalAlignment) String() string {
	switch a {
	case AlignmentLeft:
		return "left"
	case AlignmentCenter:
		return "center"
	case AlignmentRight:
		return "right"
	}
	return "unknown"
}

// VerticalAlignment positions the text block within the box height.
type VerticalAlignment int

const (
	VerticalAlignmentTop VerticalAlignment = iota
	VerticalAlignmentCenter
	VerticalAlignmentBottom
)

func (a VerticalAlignment) String() string {
	switch a {
	case VerticalAlignmentTop:
		return "top"
	case VerticalAlignmentCenter:
		return "center"
	case VerticalAlignmentBottom:
		return "bottom"
	}
	return "unknown"
}

// Wrap selects the line wrapping mode.
type Wrap int

const (
	// NoWrap only breaks at hard line breaks.
	NoWrap Wrap = iota
	// WordWrap additionally breaks at word boundaries so lines fit the
	// box width. Words wider than the box are broken mid-word.
	WordWrap
)

func (w Wrap) String() string {
	if w == WordWrap {
		return "word-wrap"
	}
	return "no-wrap"
}

// Overflow selects what happens to text that does not fit the box.
type Overflow int

const (
	// OverflowClip lays out all text; clipping is the renderer's job.
	OverflowClip Overflow = iota
	// OverflowElide cuts overflowing text and appends an ellipsis.
	OverflowElide
)

func (o Overflow) String() string {
	if o == OverflowElide {
		return "elide"
	}
	return "clip"
}
