package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestChain_StopsAtFirstHandled(t *testing.T) {
	var calls []string
	h := func(name string, r Result) Handler {
		return func() Result {
			calls = append(calls, name)
			return r
		}
	}

	handled, cmd := Chain(
		h("a", NotHandled),
		h("b", Handled(tea.Quit)),
		h("c", HandledNoCmd),
	)

	if !handled {
		t.Error("Chain() handled = false, want true")
	}
	if cmd == nil {
		t.Error("Chain() cmd = nil, want command from b")
	}
	if len(calls) != 2 || calls[1] != "b" {
		t.Errorf("calls = %v, want [a b]", calls)
	}
}

func TestChain_NoneHandled(t *testing.T) {
	handled, cmd := Chain(func() Result { return NotHandled })
	if handled || cmd != nil {
		t.Errorf("Chain() = (%v, %v), want (false, nil)", handled, cmd != nil)
	}
}
