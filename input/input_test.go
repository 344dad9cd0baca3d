package input

import "testing"

func TestEventPredicates(t *testing.T) {
	tests := []struct {
		name   string
		ev     Event
		escape bool
		click  bool
	}{
		{"escape_press", Event{Kind: KeyPressed, Key: KeyEscape}, true, false},
		{"escape_release", Event{Kind: KeyReleased, Key: KeyEscape}, false, false},
		{"left_click", Event{Kind: MousePressed, Button: MouseLeft}, false, true},
		{"right_click", Event{Kind: MousePressed, Button: MouseRight}, false, false},
		{"move", Event{Kind: MouseMoved}, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ev.IsKeyPress(KeyEscape); got != tc.escape {
				t.Fatalf("IsKeyPress(Escape) = %v", got)
			}
			if got := tc.ev.IsClick(); got != tc.click {
				t.Fatalf("IsClick() = %v", got)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "Escape" || Key(99).String() != "Unknown" {
		t.Fatalf("unexpected key names %q %q", KeyEscape.String(), Key(99).String())
	}
}
