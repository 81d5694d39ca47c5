package game

import (
	"time"

	"asteroids/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionThrust
	ActionReverse
	ActionFire
	ActionRestart
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionRotateLeft
	case tcell.KeyRight:
		return ActionRotateRight
	case tcell.KeyUp:
		return ActionThrust
	case tcell.KeyDown:
		return ActionReverse
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Some terminals report Ctrl-C as a modified rune.
	if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'a', 'A':
		return ActionRotateLeft
	case 'd', 'D':
		return ActionRotateRight
	case 'w', 'W':
		return ActionThrust
	case 's', 'S':
		return ActionReverse
	case ' ':
		return ActionFire
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// KeyState turns the terminal's key events into per-tick key state.
// Terminals send a press and then auto-repeats but never a release, so a
// movement key counts as held until hold has passed since its last event.
// Fire and Restart are edge triggered and reported on one tick only.
type KeyState struct {
	hold     time.Duration
	lastSeen map[Action]time.Time
	edges    map[Action]bool
}

// NewKeyState creates a KeyState with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold:     hold,
		lastSeen: make(map[Action]time.Time),
		edges:    make(map[Action]bool),
	}
}

// Press records a key event at now.
func (k *KeyState) Press(a Action, now time.Time) {
	switch a {
	case ActionFire, ActionRestart:
		k.edges[a] = true
	case ActionRotateLeft, ActionRotateRight, ActionThrust, ActionReverse:
		k.lastSeen[a] = now
	}
}

// Sample returns the input for the tick starting at now and consumes
// pending edge presses.
func (k *KeyState) Sample(now time.Time) system.Input {
	held := func(a Action) bool {
		t, ok := k.lastSeen[a]
		return ok && now.Sub(t) < k.hold
	}
	in := system.Input{
		Left:    held(ActionRotateLeft),
		Right:   held(ActionRotateRight),
		Forward: held(ActionThrust),
		Back:    held(ActionReverse),
		Fire:    k.edges[ActionFire],
		Restart: k.edges[ActionRestart],
	}
	clear(k.edges)
	return in
}
