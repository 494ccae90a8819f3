package component

// ActorScript drives a hostile's velocity from a tengo movement script.
// MinX and MaxX bound its patrol; Dir is +1 or -1.
type ActorScript struct {
	Script  string
	Speed   float64
	MinX    float64
	MaxX    float64
	Dir     float64
	Elapsed float64
}

var ActorScriptComponent = NewComponent[ActorScript]()
