package commands

import (
	"testing"
)

func TestDefaultRegistry_Commands(t *testing.T) {
	want := []string{"add", "app", "config", "done", "help", "list", "rm", "version"}

	all := DefaultRegistry.All()
	if len(all) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(all))
	}
	for i, cmd := range all {
		if cmd.Name() != want[i] {
			t.Errorf("command %d: expected %q, got %q", i, want[i], cmd.Name())
		}
	}
}

func TestDefaultRegistry_Aliases(t *testing.T) {
	for alias, name := range map[string]string{"create": "add", "ls": "list"} {
		cmd, ok := DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("alias %q not registered", alias)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q: expected %q, got %q", alias, name, cmd.Name())
		}
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&AddCmd{}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}
