package component

// EndTrigger marks the level's goal flag.
type EndTrigger struct{}

var EndTriggerComponent = NewComponent[EndTrigger]()
