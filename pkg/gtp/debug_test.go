package gtp

import (
	"strings"
	"testing"
)

func TestDebugSetposThenFixAtariReportsAtari(t *testing.T) {
	s, out := newTestServer(t)
	// Surround a lone black stone at E5 with three white liberty-takers
	// (D5, F5, E4; black answers at A1 and A2), leaving it in atari with
	// E6 as its one liberty and escape.
	resp := runLine(t, s, out, "debug setpos E5 D5 A1 F5 A2 E4")
	if strings.Contains(resp, "?") {
		t.Fatalf("debug setpos failed: %q", resp)
	}
	resp = runLine(t, s, out, "debug fix_atari E5")
	if !strings.Contains(resp, "= 1 E6") {
		t.Fatalf("debug fix_atari E5 = %q, want in atari with escape E6", resp)
	}
}

func TestDebugEnv8RendersGrid(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "debug env8 E5")
	if !strings.Contains(resp, "env8 =") {
		t.Fatalf("debug env8 response missing header: %q", resp)
	}
}

func TestDebugGenPlayoutRequiresSuggestionKind(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "debug gen_playout")
	if !strings.Contains(resp, "?") {
		t.Fatalf("debug gen_playout with no kind should fail, got: %q", resp)
	}
	resp = runLine(t, s, out, "debug gen_playout pat3")
	if strings.Contains(resp, "?") {
		t.Fatalf("debug gen_playout pat3 should succeed, got: %q", resp)
	}
}

func TestDebugMatchPatReportsNoMatchWhenUnloaded(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "debug match_pat E5")
	if !strings.Contains(resp, "no match") {
		t.Fatalf("debug match_pat with no loaded dictionary should report no match, got: %q", resp)
	}
}

func TestDebugPrintMarkRendersBoard(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "debug print_mark mark1")
	if strings.Contains(resp, "?") {
		t.Fatalf("debug print_mark failed: %q", resp)
	}
}

func TestDebugPlayoutRunsToCompletion(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "debug playout")
	if !strings.Contains(resp, "score=") {
		t.Fatalf("debug playout response missing score: %q", resp)
	}
}

func TestDebugHelpListsSubcommands(t *testing.T) {
	s, out := newTestServer(t)
	resp := runLine(t, s, out, "debug help")
	if !strings.Contains(resp, "setpos") {
		t.Fatalf("debug help should list setpos, got: %q", resp)
	}
}
