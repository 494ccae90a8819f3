package common

// Logical screen size. The window scales this to fit.
const (
	BaseWidth  = 960
	BaseHeight = 600
)
