package component

// Hazard marks a static void zone. Overlap kills characters and actors alike.
type Hazard struct{}

var HazardComponent = NewComponent[Hazard]()
