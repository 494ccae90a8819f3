// Package hud keeps the on-screen tallies: hearts, score, stars and the
// contextual hint line. Drawing lives with the game; this package only holds
// state so headless runs can use it too.
package hud

import "time"

type HUD struct {
	hearts    int
	maxHearts int
	score     int
	stars     int

	hint          string
	hintRemaining time.Duration
	hintDuration  time.Duration
}

func New(hearts int, hintDuration time.Duration) *HUD {
	return &HUD{hearts: hearts, maxHearts: hearts, hintDuration: hintDuration}
}

func (h *HUD) AddScore(amount int) { h.score += amount }

func (h *HUD) Score() int { return h.score }

func (h *HUD) AddStar() { h.stars++ }

func (h *HUD) Stars() int { return h.stars }

// LoseHeart removes one heart, never going below zero.
func (h *HUD) LoseHeart() {
	if h.hearts > 0 {
		h.hearts--
	}
}

func (h *HUD) Hearts() int { return h.hearts }

func (h *HUD) MaxHearts() int { return h.maxHearts }

// ShowHint displays message for the configured hint duration.
func (h *HUD) ShowHint(message string) {
	h.hint = message
	h.hintRemaining = h.hintDuration
}

// Hint returns the visible hint, if any.
func (h *HUD) Hint() (string, bool) {
	if h.hint == "" || h.hintRemaining <= 0 {
		return "", false
	}
	return h.hint, true
}

// Update ages the hint by dt.
func (h *HUD) Update(dt time.Duration) {
	if h.hintRemaining <= 0 {
		return
	}
	h.hintRemaining -= dt
	if h.hintRemaining <= 0 {
		h.hint = ""
	}
}
