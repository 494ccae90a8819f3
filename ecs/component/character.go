package component

import "time"

// Character is the player-controlled entity's combat state. Only the combat
// and prop systems write these fields.
type Character struct {
	Health    int
	MaxHealth int

	// Invincible is true exactly while InvincibleRemaining > 0.
	Invincible          bool
	InvincibleRemaining time.Duration

	ControlsDisabled bool
	HitStunned       bool
	// ActorContactsDisabled suppresses character/hostile contacts for a
	// short window after a stomp.
	ActorContactsDisabled bool

	FacingLeft bool
	// Held is the ecs.Entity of the carried prop, or 0.
	Held uint64

	MoveSpeed  float64
	JumpSpeed  float64
	// StompBoost scales the stomp rebound; 0 means 1.
	StompBoost float64
	// ThrowBoost scales throw velocity; 0 means 1.
	ThrowBoost float64
}

var CharacterComponent = NewComponent[Character]()
