package gtp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gobanengine/michigo/pkg/engine"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	e, err := engine.New(engine.Config{BoardSize: 9, Komi: 7.5, Seed: 1, NumSims: 8})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	out := &bytes.Buffer{}
	return New(e, nil, out), out
}

func runLine(t *testing.T, s *Server, out *bytes.Buffer, line string) string {
	t.Helper()
	s.In = strings.NewReader(line + "\n")
	out.Reset()
	if err := s.Run(); err != nil {
		t.Fatalf("Run(%q): %v", line, err)
	}
	return out.String()
}

func TestNameAndVersionRespondOK(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "name")
	if !strings.Contains(resp, "=") || !strings.Contains(resp, "michigo") {
		t.Fatalf("unexpected name response: %q", resp)
	}
	resp = runLine(t, s, out, "version")
	if !strings.HasPrefix(strings.TrimSpace(resp), "=") {
		t.Fatalf("unexpected version response: %q", resp)
	}
}

func TestKnownCommandReportsTrueAndFalse(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "known_command play")
	if !strings.Contains(resp, "true") {
		t.Fatalf("known_command play = %q, want true", resp)
	}
	resp = runLine(t, s, out, "known_command bogus_command")
	if !strings.Contains(resp, "false") {
		t.Fatalf("known_command bogus_command = %q, want false", resp)
	}
}

func TestPlayThenGenmoveRespondsWithoutError(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "play black E5")
	if strings.Contains(resp, "?") {
		t.Fatalf("play E5 failed: %q", resp)
	}
	resp = runLine(t, s, out, "genmove white")
	if strings.Contains(resp, "?") {
		t.Fatalf("genmove failed: %q", resp)
	}
}

func TestPlayOccupiedPointFails(t *testing.T) {
	s, out := newTestServer(t)
	s.In = strings.NewReader("play black E5\nplay white E5\n")
	out.Reset()
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var sawError bool
	for _, l := range lines {
		if strings.HasPrefix(l, "?") {
			sawError = true
		}
	}
	if !sawError {
		t.Fatalf("expected a ?-prefixed error response, got: %q", out.String())
	}
}

func TestBoardsizeMismatchFails(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "boardsize 19")
	if !strings.Contains(resp, "?") {
		t.Fatalf("boardsize 19 on a 9x9 engine should fail, got: %q", resp)
	}
	resp = runLine(t, s, out, "boardsize 9")
	if strings.Contains(resp, "?") {
		t.Fatalf("boardsize 9 on a 9x9 engine should succeed, got: %q", resp)
	}
}

func TestQuitStopsTheLoop(t *testing.T) {
	s, out := newTestServer(t)
	s.In = strings.NewReader("name\nquit\ngenmove black\n")
	out.Reset()
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	replies := 0
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "=") || strings.HasPrefix(line, "?") {
			replies++
		}
	}
	if replies != 2 {
		t.Fatalf("got %d replies, want 2 (name, quit); commands after quit should not run: %q", replies, out.String())
	}
}

func TestListCommandsIncludesDebug(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "list_commands")
	if !strings.Contains(resp, "debug") {
		t.Fatalf("list_commands should include debug, got: %q", resp)
	}
}
