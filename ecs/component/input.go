package component

// Input stores per-frame intent for the character. The game fills it from
// the keyboard; headless runs fill it from a script.
type Input struct {
	MoveX        float64
	Jump         bool
	JumpPressed  bool
	ThrowPressed bool
}

var InputComponent = NewComponent[Input]()
