package typewriter

import (
	"context"
	"fmt"
	"io"
)

// Scanner reports debounced key transitions, already mapped through the wiring
// table. Scan blocks until a transition happens. It returns io.EOF when no more
// transitions will come.
type Scanner interface {
	Scan(ctx context.Context) (Transition, error)
}

// ScriptScanner replays a fixed list of transitions.
type ScriptScanner struct {
	Transitions []Transition
	next        int
}

// Scan returns the next scripted transition.
func (s *ScriptScanner) Scan(ctx context.Context) (Transition, error) {
	if err := ctx.Err(); err != nil {
		return Transition{}, err
	}
	if s.next >= len(s.Transitions) {
		return Transition{}, io.EOF
	}
	t := s.Transitions[s.next]
	s.next++
	return t, nil
}

// Strokes returns the press and release transitions that type text on layout.
// Characters with no key on the layout give an error.
func Strokes(layout *Layout, text string) ([]Transition, error) {
	var ts []Transition
	for _, r := range text {
		code, err := runeCode(layout, r)
		if err != nil {
			return nil, err
		}
		ts = append(ts, Transition{Code: code, Press: true}, Transition{Code: code})
	}
	return ts, nil
}

func runeCode(layout *Layout, r rune) (uint8, error) {
	var vk VirtualKey
	switch r {
	case '\n', '\r':
		vk = VKEnter
	case '\t':
		vk = VKTab
	case '\b', 0x7f:
		vk = VKBackspace
	default:
		var ok bool
		if vk, ok = LookupRune(r); !ok {
			return 0, fmt.Errorf("%q has no virtual key", r)
		}
	}
	code, ok := layout.Code(vk)
	if !ok {
		return 0, fmt.Errorf("%q (%s) is not on the %s layout", r, vk, layout.Name)
	}
	return code, nil
}
