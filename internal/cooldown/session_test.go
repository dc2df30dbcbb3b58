package cooldown

import (
	"math"
	"strings"
	"testing"
)

func TestEffectiveCooldown(t *testing.T) {
	tests := []struct {
		base     float64
		haste    int
		expected float64
	}{
		{8, 0, 8},
		{8, 50, 8.0 / 1.5},
		{10, 100, 5},
		{120, 20, 100},
		{8, -30, 8},
	}

	for _, test := range tests {
		result := EffectiveCooldown(test.base, test.haste)
		if math.Abs(result-test.expected) > 1e-9 {
			t.Errorf("EffectiveCooldown(%v, %d) = %v, expected %v", test.base, test.haste, result, test.expected)
		}
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		remaining float64
		expected  string
	}{
		{4.3, "4.3s"},
		{8, "8.0s"},
		{5.3333, "5.3s"},
		{0.0333, "0.0s"},
		{0, "0.0s"},
	}

	for _, test := range tests {
		result := FormatRemaining(test.remaining)
		if result != test.expected {
			t.Errorf("FormatRemaining(%v) = %s, expected %s", test.remaining, result, test.expected)
		}
	}
}

func TestNewSession(t *testing.T) {
	s1 := NewSession(Key{Champion: "Ahri", Ability: "AhriQ"}, 8)
	s2 := NewSession(Key{Champion: "Ahri", Ability: "AhriQ"}, 8)

	if s1.ID == s2.ID {
		t.Error("Expected different session IDs")
	}
	if !strings.HasPrefix(s1.ID, SessionIDPrefix) {
		t.Errorf("Expected ID to start with '%s', got: %s", SessionIDPrefix, s1.ID)
	}
	// prefix + 36 chars for UUID
	if len(s1.ID) != len(SessionIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(SessionIDPrefix)+36, len(s1.ID), s1.ID)
	}
	if s1.Label() != "8.0s" {
		t.Errorf("Expected initial label 8.0s, got %s", s1.Label())
	}
}

func TestSession_TickDecreasesByStep(t *testing.T) {
	session := NewSession(Key{}, 8.0/1.5)

	previous := session.Remaining()
	ticks := 0
	for {
		remaining, done := session.Tick()
		ticks++
		if math.Abs((previous-remaining)-TickStep) > 1e-9 {
			t.Fatalf("Tick %d: expected decrease of %v, got %v", ticks, TickStep, previous-remaining)
		}
		if done {
			if remaining > 0 {
				t.Fatalf("Tick %d: done with remaining %v", ticks, remaining)
			}
			break
		}
		if remaining <= 0 {
			t.Fatalf("Tick %d: remaining %v but not done", ticks, remaining)
		}
		previous = remaining
		if ticks > 1000 {
			t.Fatal("Countdown never finished")
		}
	}

	// 5.333s shows 5.3 ... 0.0 and ends on the 54th tick
	if ticks != 54 {
		t.Errorf("Expected 54 ticks, got %d", ticks)
	}
	if session.Ticks() != ticks {
		t.Errorf("Expected Ticks() = %d, got %d", ticks, session.Ticks())
	}
	if !session.Done() {
		t.Error("Expected session to be done")
	}
}

func TestSession_WholeSecondsEndExactly(t *testing.T) {
	session := NewSession(Key{}, 8)

	for i := 1; i < 80; i++ {
		if _, done := session.Tick(); done {
			t.Fatalf("Session ended early at tick %d", i)
		}
	}
	remaining, done := session.Tick()
	if !done {
		t.Fatalf("Expected session to end at tick 80, remaining %v", remaining)
	}
	if remaining != 0 {
		t.Errorf("Expected remaining exactly 0, got %v", remaining)
	}
}
