package cooldown

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/lol-cooldowns/internal/model"
)

// ErrNoCooldown means the ability has no positive cooldown to count down
var ErrNoCooldown = errors.New("ability has no cooldown")

// Lookup provides the ability level and ability haste for a countdown
type Lookup interface {
	Snapshot(name, abilityID string) (model.AbilityState, int, error)
}

// Ticker delivers countdown ticks
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (tt timeTicker) C() <-chan time.Time { return tt.t.C }
func (tt timeTicker) Stop()               { tt.t.Stop() }

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Update is emitted for every visible change of a countdown
type Update struct {
	SessionID string
	Key       Key
	Remaining float64
	Label     string
	Done      bool // overlay must be removed
}

// Timer runs countdown sessions, at most one per (champion, ability)
type Timer struct {
	lookup    Lookup
	period    time.Duration
	newTicker func(time.Duration) Ticker

	mu       sync.Mutex
	running  map[Key]*run
	onUpdate func(Update) // callback for UI updates
}

type run struct {
	session *Session
	stop    chan struct{}
}

// NewTimer creates a countdown timer reading ability data from lookup
func NewTimer(lookup Lookup) *Timer {
	return &Timer{
		lookup:    lookup,
		period:    TickPeriod,
		newTicker: newTimeTicker,
		running:   make(map[Key]*run),
	}
}

// SetUpdateCallback sets the callback function for countdown updates.
// It is called from the timer goroutines.
func (t *Timer) SetUpdateCallback(callback func(Update)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUpdate = callback
}

// Start begins a countdown for an ability using its current level and the
// champion's ability haste. A countdown already running for the same
// ability is replaced.
func (t *Timer) Start(name, abilityID string) (Session, error) {
	state, haste, err := t.lookup.Snapshot(name, abilityID)
	if err != nil {
		return Session{}, err
	}

	base := state.BaseCooldown()
	if base <= 0 {
		return Session{}, fmt.Errorf("%w: %s %s", ErrNoCooldown, name, abilityID)
	}

	key := Key{Champion: name, Ability: abilityID}
	session := NewSession(key, EffectiveCooldown(base, haste))
	r := &run{session: session, stop: make(chan struct{})}

	t.mu.Lock()
	if prev, ok := t.running[key]; ok {
		close(prev.stop)
		log.Printf("Restarting countdown %s (replacing %s)", key, prev.session.ID)
	}
	t.running[key] = r
	ticker := t.newTicker(t.period)
	t.mu.Unlock()

	log.Printf("Countdown started: %s level=%s haste=%d base=%.2f effective=%.2f",
		key, state.LevelText(), haste, base, session.Initial)

	t.notify(Update{
		SessionID: session.ID,
		Key:       key,
		Remaining: session.Remaining(),
		Label:     session.Label(),
	})

	started := *session
	go t.loop(r, ticker)

	return started, nil
}

// State returns whether a countdown is running for the ability
func (t *Timer) State(key Key) model.CountdownState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.running[key]; ok {
		return model.CountdownRunning
	}
	return model.CountdownIdle
}

// Active returns the number of running countdowns
func (t *Timer) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.running)
}

// Stop ends every running countdown without emitting further updates
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, r := range t.running {
		close(r.stop)
		delete(t.running, key)
	}
}

// loop drives one session until it ends or is replaced
func (t *Timer) loop(r *run, ticker Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C():
			remaining, done := r.session.Tick()
			if done {
				if t.finish(r) {
					log.Printf("Countdown finished: %s", r.session.Key)
					t.notify(Update{
						SessionID: r.session.ID,
						Key:       r.session.Key,
						Remaining: 0,
						Done:      true,
					})
				}
				return
			}

			if !t.isCurrent(r) {
				return
			}
			t.notify(Update{
				SessionID: r.session.ID,
				Key:       r.session.Key,
				Remaining: remaining,
				Label:     FormatRemaining(remaining),
			})
		}
	}
}

// finish removes the run and reports whether it was still current
func (t *Timer) finish(r *run) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running[r.session.Key] != r {
		return false
	}
	delete(t.running, r.session.Key)
	return true
}

func (t *Timer) isCurrent(r *run) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running[r.session.Key] == r
}

// notify calls the update callback if set
func (t *Timer) notify(update Update) {
	t.mu.Lock()
	callback := t.onUpdate
	t.mu.Unlock()

	if callback != nil {
		callback(update)
	}
}
