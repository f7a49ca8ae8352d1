package common

// Side identifies one edge of a rectangle.
type Side int64

const (
	SideLeft   Side = 0
	SideTop    Side = 1
	SideRight  Side = 2
	SideBottom Side = 3
)

var SideEnum = MustEnum("Side", []Member[Side]{
	{Name: "Left", EngineName: "SIDE_LEFT", Value: SideLeft},
	{Name: "Top", EngineName: "SIDE_TOP", Value: SideTop},
	{Name: "Right", EngineName: "SIDE_RIGHT", Value: SideRight},
	{Name: "Bottom", EngineName: "SIDE_BOTTOM", Value: SideBottom},
})

// Corner identifies one corner of a rectangle, clockwise from the top left.
type Corner int64

const (
	CornerTopLeft     Corner = 0
	CornerTopRight    Corner = 1
	CornerBottomRight Corner = 2
	CornerBottomLeft  Corner = 3
)

var CornerEnum = MustEnum("Corner", []Member[Corner]{
	{Name: "TopLeft", EngineName: "CORNER_TOP_LEFT", Value: CornerTopLeft},
	{Name: "TopRight", EngineName: "CORNER_TOP_RIGHT", Value: CornerTopRight},
	{Name: "BottomRight", EngineName: "CORNER_BOTTOM_RIGHT", Value: CornerBottomRight},
	{Name: "BottomLeft", EngineName: "CORNER_BOTTOM_LEFT", Value: CornerBottomLeft},
})

// Orientation is the axis a container or slider lays out along.
type Orientation int64

const (
	Vertical   Orientation = 1
	Horizontal Orientation = 0
)

var OrientationEnum = MustEnum("Orientation", []Member[Orientation]{
	{Name: "Vertical", EngineName: "VERTICAL", Value: Vertical},
	{Name: "Horizontal", EngineName: "HORIZONTAL", Value: Horizontal},
})

type ClockDirection int64

const (
	Clockwise        ClockDirection = 0
	Counterclockwise ClockDirection = 1
)

var ClockDirectionEnum = MustEnum("ClockDirection", []Member[ClockDirection]{
	{Name: "Clockwise", EngineName: "CLOCKWISE", Value: Clockwise},
	{Name: "Counterclockwise", EngineName: "COUNTERCLOCKWISE", Value: Counterclockwise},
})

// HorizontalAlignment positions text or content along the horizontal axis.
type HorizontalAlignment int64

const (
	HorizontalAlignmentLeft   HorizontalAlignment = 0
	HorizontalAlignmentCenter HorizontalAlignment = 1
	HorizontalAlignmentRight  HorizontalAlignment = 2
	HorizontalAlignmentFill   HorizontalAlignment = 3 // expand rows to fit the width
)

var HorizontalAlignmentEnum = MustEnum("HorizontalAlignment", []Member[HorizontalAlignment]{
	{Name: "Left", EngineName: "HORIZONTAL_ALIGNMENT_LEFT", Value: HorizontalAlignmentLeft},
	{Name: "Center", EngineName: "HORIZONTAL_ALIGNMENT_CENTER", Value: HorizontalAlignmentCenter},
	{Name: "Right", EngineName: "HORIZONTAL_ALIGNMENT_RIGHT", Value: HorizontalAlignmentRight},
	{Name: "Fill", EngineName: "HORIZONTAL_ALIGNMENT_FILL", Value: HorizontalAlignmentFill},
})

type VerticalAlignment int64

const (
	VerticalAlignmentTop    VerticalAlignment = 0
	VerticalAlignmentCenter VerticalAlignment = 1
	VerticalAlignmentBottom VerticalAlignment = 2
	VerticalAlignmentFill   VerticalAlignment = 3
)

var VerticalAlignmentEnum = MustEnum("VerticalAlignment", []Member[VerticalAlignment]{
	{Name: "Top", EngineName: "VERTICAL_ALIGNMENT_TOP", Value: VerticalAlignmentTop},
	{Name: "Center", EngineName: "VERTICAL_ALIGNMENT_CENTER", Value: VerticalAlignmentCenter},
	{Name: "Bottom", EngineName: "VERTICAL_ALIGNMENT_BOTTOM", Value: VerticalAlignmentBottom},
	{Name: "Fill", EngineName: "VERTICAL_ALIGNMENT_FILL", Value: VerticalAlignmentFill},
})

// InlineAlignment aligns an inline object (an image, a table) against the surrounding text.
//
// The low two bits pick the point on the object (the *To members, see InlineAlignmentImageMask)
// and bits 2-3 pick the point on the text line (the To* members, see InlineAlignmentTextMask).
// Top, Center and Bottom are the common combinations.
type InlineAlignment int64

const (
	// Point on the inline object.
	InlineAlignmentTopTo      InlineAlignment = 0b0000
	InlineAlignmentCenterTo   InlineAlignment = 0b0001
	InlineAlignmentBaselineTo InlineAlignment = 0b0011
	InlineAlignmentBottomTo   InlineAlignment = 0b0010

	// Point on the text line.
	InlineAlignmentToTop      InlineAlignment = 0b0000
	InlineAlignmentToCenter   InlineAlignment = 0b0100
	InlineAlignmentToBaseline InlineAlignment = 0b1000
	InlineAlignmentToBottom   InlineAlignment = 0b1100

	// Combinations.
	InlineAlignmentTop    InlineAlignment = InlineAlignmentTopTo | InlineAlignmentToTop
	InlineAlignmentCenter InlineAlignment = InlineAlignmentCenterTo | InlineAlignmentToCenter
	InlineAlignmentBottom InlineAlignment = InlineAlignmentBottomTo | InlineAlignmentToBottom

	// Masks.
	InlineAlignmentImageMask InlineAlignment = 0b0011
	InlineAlignmentTextMask  InlineAlignment = 0b1100
)

var InlineAlignmentEnum = MustEnum("InlineAlignment", []Member[InlineAlignment]{
	{Name: "TopTo", EngineName: "INLINE_ALIGNMENT_TOP_TO", Value: InlineAlignmentTopTo},
	{Name: "CenterTo", EngineName: "INLINE_ALIGNMENT_CENTER_TO", Value: InlineAlignmentCenterTo},
	{Name: "BaselineTo", EngineName: "INLINE_ALIGNMENT_BASELINE_TO", Value: InlineAlignmentBaselineTo},
	{Name: "BottomTo", EngineName: "INLINE_ALIGNMENT_BOTTOM_TO", Value: InlineAlignmentBottomTo},
	{Name: "ToTop", EngineName: "INLINE_ALIGNMENT_TO_TOP", Value: InlineAlignmentToTop, Alias: true},
	{Name: "ToCenter", EngineName: "INLINE_ALIGNMENT_TO_CENTER", Value: InlineAlignmentToCenter},
	{Name: "ToBaseline", EngineName: "INLINE_ALIGNMENT_TO_BASELINE", Value: InlineAlignmentToBaseline},
	{Name: "ToBottom", EngineName: "INLINE_ALIGNMENT_TO_BOTTOM", Value: InlineAlignmentToBottom},
	{Name: "Top", EngineName: "INLINE_ALIGNMENT_TOP", Value: InlineAlignmentTop, Alias: true, Composite: true},
	{Name: "Center", EngineName: "INLINE_ALIGNMENT_CENTER", Value: InlineAlignmentCenter, Composite: true},
	{Name: "Bottom", EngineName: "INLINE_ALIGNMENT_BOTTOM", Value: InlineAlignmentBottom, Composite: true},
	{Name: "ImageMask", EngineName: "INLINE_ALIGNMENT_IMAGE_MASK", Value: InlineAlignmentImageMask, Alias: true, Composite: true},
	{Name: "TextMask", EngineName: "INLINE_ALIGNMENT_TEXT_MASK", Value: InlineAlignmentTextMask, Alias: true, Composite: true},
})

// EulerOrder is the order in which rotations about each axis are applied.
type EulerOrder int64

const (
	EulerOrderXYZ EulerOrder = 0
	EulerOrderXZY EulerOrder = 1
	EulerOrderYXZ EulerOrder = 2
	EulerOrderYZX EulerOrder = 3
	EulerOrderZXY EulerOrder = 4
	EulerOrderZYX EulerOrder = 5
)

var EulerOrderEnum = MustEnum("EulerOrder", []Member[EulerOrder]{
	{Name: "XYZ", EngineName: "EULER_ORDER_XYZ", Value: EulerOrderXYZ},
	{Name: "XZY", EngineName: "EULER_ORDER_XZY", Value: EulerOrderXZY},
	{Name: "YXZ", EngineName: "EULER_ORDER_YXZ", Value: EulerOrderYXZ},
	{Name: "YZX", EngineName: "EULER_ORDER_YZX", Value: EulerOrderYZX},
	{Name: "ZXY", EngineName: "EULER_ORDER_ZXY", Value: EulerOrderZXY},
	{Name: "ZYX", EngineName: "EULER_ORDER_ZYX", Value: EulerOrderZYX},
})

func (s Side) String() string                { return SideEnum.NameOf(s) }
func (c Corner) String() string              { return CornerEnum.NameOf(c) }
func (o Orientation) String() string         { return OrientationEnum.NameOf(o) }
func (d ClockDirection) String() string      { return ClockDirectionEnum.NameOf(d) }
func (a HorizontalAlignment) String() string { return HorizontalAlignmentEnum.NameOf(a) }
func (a VerticalAlignment) String() string   { return VerticalAlignmentEnum.NameOf(a) }
func (a InlineAlignment) String() string     { return InlineAlignmentEnum.NameOf(a) }
func (o EulerOrder) String() string          { return EulerOrderEnum.NameOf(o) }

// Opposite returns the side across the rectangle.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Image returns the part of the alignment that selects the point on the inline object.
func (a InlineAlignment) Image() InlineAlignment {
	return a & InlineAlignmentImageMask
}

// Text returns the part of the alignment that selects the point on the text line.
func (a InlineAlignment) Text() InlineAlignment {
	return a & InlineAlignmentTextMask
}
