package component

import "image/color"

// Sprite is the placeholder visual: a filled box of Color, optionally
// replaced by Tint, drawn with Alpha.
type Sprite struct {
	Color  color.NRGBA
	Tint   color.NRGBA
	Tinted bool
	Alpha  float64
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
