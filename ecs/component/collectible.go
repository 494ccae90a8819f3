package component

type CollectibleKind string

const (
	CollectibleCoin CollectibleKind = "coin"
	CollectibleStar CollectibleKind = "star"
)

// Collectible is a static trigger worth Value points. Collected flips once
// and is never cleared.
type Collectible struct {
	Kind      CollectibleKind
	Value     int
	Collected bool
}

var CollectibleComponent = NewComponent[Collectible]()
