package cooldown

import "github.com/ytget/lol-cooldowns/internal/model"

// Runner defines the interface for running ability countdowns.
type Runner interface {
	SetUpdateCallback(func(Update))
	Start(name, abilityID string) (Session, error)
	State(key Key) model.CountdownState
	Stop()
}
