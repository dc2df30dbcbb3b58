package roster

import (
	"context"

	"github.com/ytget/lol-cooldowns/internal/model"
)

// Tracker defines the interface for the champion roster.
type Tracker interface {
	SetUpdateCallback(func(model.TrackedChampion))
	Add(ctx context.Context, name string) (model.TrackedChampion, error)
	Get(name string) (model.TrackedChampion, bool)
	List() []model.TrackedChampion
	SetAbilityHaste(name, text string) (int, error)
	AdjustLevel(name, abilityID string, delta int) (model.AbilityState, error)

	// Snapshot returns the ability state and the champion's ability haste
	Snapshot(name, abilityID string) (model.AbilityState, int, error)
}
