package game

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionRotateLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionRotateRight},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionThrust},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionReverse},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionRotateLeft},
		{"D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), ActionRotateRight},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionThrust},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionReverse},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionFire},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRestart},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyToAction(tc.ev); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestKeyStateHoldDecays(t *testing.T) {
	start := time.Now()
	k := NewKeyState(100 * time.Millisecond)
	k.Press(ActionThrust, start)
	k.Press(ActionRotateLeft, start)

	in := k.Sample(start.Add(50 * time.Millisecond))
	if !in.Forward || !in.Left {
		t.Fatalf("expected thrust and left held, got %+v", in)
	}
	if in.Back || in.Right {
		t.Fatalf("unpressed keys reported held: %+v", in)
	}

	// An auto-repeat keeps thrust alive; left is released.
	k.Press(ActionThrust, start.Add(90*time.Millisecond))
	in = k.Sample(start.Add(150 * time.Millisecond))
	if !in.Forward || in.Left {
		t.Fatalf("expected only thrust held, got %+v", in)
	}
}

func TestKeyStateEdgesFireOnce(t *testing.T) {
	now := time.Now()
	k := NewKeyState(100 * time.Millisecond)
	k.Press(ActionFire, now)
	k.Press(ActionFire, now)
	k.Press(ActionRestart, now)

	in := k.Sample(now)
	if !in.Fire || !in.Restart {
		t.Fatalf("expected fire and restart, got %+v", in)
	}
	in = k.Sample(now)
	if in.Fire || in.Restart {
		t.Fatalf("edge presses reported twice: %+v", in)
	}
}
