package interactive

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/yandexplus/yplus-go/pkg/hub"
	"github.com/yandexplus/yplus-go/pkg/ident"
)

func newTestConsole(t *testing.T) (*Console, *hub.Hub, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := hub.New()
	c := newConsole(&buf)
	c.Attach(h, ident.NewCounter("user-"))
	return c, h, &buf
}

func run(t *testing.T, c *Console, buf *bytes.Buffer, line string) string {
	t.Helper()
	buf.Reset()
	c.Handle(context.Background(), line)
	return buf.String()
}

func TestConsoleSession(t *testing.T) {
	c, h, buf := newTestConsole(t)

	steps := []struct {
		line string
		want []string
	}{
		{"add socket_off", []string{"YandexPlus receives command: Turn Smart Socket off (#0)"}},
		{"add light_increase 60", []string{"Increase light by 60 (#1)"}},
		{"join", []string{"User user-1 joins YandexPlus"}},
		{"list", []string{"(none, waiting for notify)"}},
		{"notify", []string{"Catalog of 2 commands sent to 1 users"}},
		{"list", []string{"0: Turn Smart Socket off", "1: Increase light by 60"}},
		{"run 0", []string{"Running #0 Turn Smart Socket off", "off"}},
		{"run user-1 1", []string{"level 60"}},
		{"run 1", []string{"level 19"}},
		{"run 2", []string{"Command #2 does not exist!"}},
		{"devices", []string{"SOCKET", "LIGHT", "level 19"}},
		{"catalog", []string{"LIGHT", "Increase light by 60"}},
	}

	for _, step := range steps {
		out := run(t, c, buf, step.line)
		for _, want := range step.want {
			if !strings.Contains(out, want) {
				t.Errorf("%q: output missing %q:\n%s", step.line, want, out)
			}
		}
	}

	if h.Devices().Socket().IsOn() {
		t.Error("expected socket off")
	}
}

func TestConsoleUsers(t *testing.T) {
	c, h, buf := newTestConsole(t)

	run(t, c, buf, "join 3")
	if len(h.Observers()) != 3 {
		t.Fatalf("expected 3 observers, got %d", len(h.Observers()))
	}

	out := run(t, c, buf, "users")
	for _, want := range []string{"1. user-1", "2. user-2", "3. user-3"} {
		if !strings.Contains(out, want) {
			t.Errorf("users output missing %q:\n%s", want, out)
		}
	}

	if out := run(t, c, buf, "list"); !strings.Contains(out, "Which user?") {
		t.Errorf("expected ambiguity message, got %q", out)
	}

	out = run(t, c, buf, "leave 2")
	if !strings.Contains(out, "User user-2 leaves") {
		t.Errorf("unexpected leave output %q", out)
	}
	if len(h.Observers()) != 2 {
		t.Errorf("expected 2 observers after leave, got %d", len(h.Observers()))
	}

	if out := run(t, c, buf, "leave user-9"); !strings.Contains(out, "Unknown user: user-9") {
		t.Errorf("unexpected output %q", out)
	}
	if out := run(t, c, buf, "join zero"); !strings.Contains(out, "Invalid count") {
		t.Errorf("unexpected output %q", out)
	}

	c.closeUsers()
	if len(h.Observers()) != 0 {
		t.Errorf("expected all users detached, got %d", len(h.Observers()))
	}
}

func TestConsoleLoadPreset(t *testing.T) {
	c, h, buf := newTestConsole(t)

	out := run(t, c, buf, "load default")
	if !strings.Contains(out, "Added 20 commands from default") {
		t.Errorf("unexpected output %q", out)
	}
	if h.Len() != 20 {
		t.Errorf("expected 20 commands, got %d", h.Len())
	}

	if out := run(t, c, buf, "load nope"); !strings.Contains(out, "Error:") {
		t.Errorf("expected error, got %q", out)
	}
	if out := run(t, c, buf, "load"); !strings.Contains(out, "Presets: default") {
		t.Errorf("expected preset list, got %q", out)
	}
}

func TestConsoleToggle(t *testing.T) {
	c, h, buf := newTestConsole(t)

	if out := run(t, c, buf, "toggle"); !strings.Contains(out, "Socket is now off") {
		t.Errorf("unexpected output %q", out)
	}
	if out := run(t, c, buf, "toggle"); !strings.Contains(out, "Socket is now on") {
		t.Errorf("unexpected output %q", out)
	}
	if !h.Devices().Socket().IsOn() {
		t.Error("expected socket on after two toggles")
	}
}

func TestConsoleUUIDLookup(t *testing.T) {
	var buf bytes.Buffer
	h := hub.New()
	c := newConsole(&buf)
	c.Attach(h, ident.NewUUID())

	run(t, c, &buf, "join")
	id := c.users[0].ID()

	out := run(t, c, &buf, "leave "+strings.ToUpper(id))
	if !strings.Contains(out, "User "+id+" leaves") {
		t.Errorf("unexpected output %q", out)
	}
	if len(h.Observers()) != 0 {
		t.Errorf("expected user detached, got %d observers", len(h.Observers()))
	}
}

func TestConsoleErrors(t *testing.T) {
	c, _, buf := newTestConsole(t)

	tests := []struct {
		line string
		want string
	}{
		{"add toaster_on", "unknown command kind"},
		{"add music_play", "requires a song"},
		{"run", "Usage: run"},
		{"run 0", "Which user?"},
		{"frobnicate", "Unknown command: frobnicate"},
		{"load", "Usage: load"},
		{"catalog", "Catalog is empty"},
		{"users", "No users"},
	}

	for _, tt := range tests {
		if out := run(t, c, buf, tt.line); !strings.Contains(out, tt.want) {
			t.Errorf("%q: expected %q in %q", tt.line, tt.want, out)
		}
	}

	run(t, c, buf, "join")
	if out := run(t, c, buf, "run x"); !strings.Contains(out, "Invalid index: x") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestConsoleQuit(t *testing.T) {
	c, _, _ := newTestConsole(t)

	for _, line := range []string{"quit", "exit", "q", "QUIT"} {
		if !c.Handle(context.Background(), line) {
			t.Errorf("%q should quit", line)
		}
	}
	if c.Handle(context.Background(), "   ") {
		t.Error("blank line should not quit")
	}
}
