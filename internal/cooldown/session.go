package cooldown

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Countdown constants
const (
	TickPeriod      = 100 * time.Millisecond
	TickStep        = 0.1
	TicksPerSecond  = 10
	LabelFormat     = "%.1fs"
	SessionIDPrefix = "countdown-"
)

// Key identifies the ability a countdown belongs to
type Key struct {
	Champion string
	Ability  string
}

// String returns "Champion/Ability"
func (k Key) String() string {
	return k.Champion + "/" + k.Ability
}

// EffectiveCooldown applies ability haste to a base cooldown:
// base / (1 + haste/100). Negative haste counts as 0.
func EffectiveCooldown(base float64, haste int) float64 {
	if haste < 0 {
		haste = 0
	}
	return base / (1 + float64(haste)/100)
}

// FormatRemaining renders remaining seconds for the overlay (e.g. "4.3s")
func FormatRemaining(remaining float64) string {
	return fmt.Sprintf(LabelFormat, remaining)
}

// Session is one countdown started by a click on an ability icon
type Session struct {
	ID      string
	Key     Key
	Initial float64

	ticks int
}

// NewSession creates a session counting down from initial seconds
func NewSession(key Key, initial float64) *Session {
	return &Session{
		ID:      SessionIDPrefix + uuid.NewString(),
		Key:     key,
		Initial: initial,
	}
}

// Remaining returns the seconds left. It is derived from the tick count so
// that every tick lowers it by exactly TickStep.
func (s *Session) Remaining() float64 {
	return (s.Initial*TicksPerSecond - float64(s.ticks)) / TicksPerSecond
}

// Ticks returns the number of ticks consumed
func (s *Session) Ticks() int {
	return s.ticks
}

// Tick consumes one tick and reports whether the countdown has ended
func (s *Session) Tick() (remaining float64, done bool) {
	s.ticks++
	remaining = s.Remaining()
	return remaining, remaining <= 0
}

// Done reports whether the countdown has ended
func (s *Session) Done() bool {
	return s.Remaining() <= 0
}

// Label returns the overlay text for the current remaining time
func (s *Session) Label() string {
	return FormatRemaining(s.Remaining())
}
