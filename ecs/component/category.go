package component

// Category is the collision family an entity's body belongs to. Contact
// wiring is keyed by pairs of categories.
type Category uint8

const (
	CategoryNone Category = iota
	CategorySolid
	CategoryCharacter
	CategoryHostile
	CategoryCollectible
	CategoryProp
	CategoryHazard
	CategoryEndTrigger
)

func (c Category) String() string {
	switch c {
	case CategorySolid:
		return "solid"
	case CategoryCharacter:
		return "character"
	case CategoryHostile:
		return "hostile"
	case CategoryCollectible:
		return "collectible"
	case CategoryProp:
		return "prop"
	case CategoryHazard:
		return "hazard"
	case CategoryEndTrigger:
		return "end_trigger"
	default:
		return "none"
	}
}
