package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateChampion means the champion is already on the roster
	ErrDuplicateChampion = errors.New("champion already tracked")

	// ErrUnknownChampion means the name is not in the Data Dragon champion list
	ErrUnknownChampion = errors.New("unknown champion")

	// ErrChampionNotTracked means a lookup referenced a champion not on the roster
	ErrChampionNotTracked = errors.New("champion not tracked")

	// ErrAbilityNotFound means the champion has no ability with the given id
	ErrAbilityNotFound = errors.New("ability not found")

	// ErrFixedCooldown means the ability has no levels to adjust
	ErrFixedCooldown = errors.New("ability cooldown does not scale with level")
)

// UnknownChampionError carries the rejected name and the closest valid one, if any
type UnknownChampionError struct {
	Name       string
	Suggestion string
}

func (e *UnknownChampionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown champion %q (did you mean %s?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown champion %q", e.Name)
}

// Unwrap makes UnknownChampionError match ErrUnknownChampion
func (e *UnknownChampionError) Unwrap() error {
	return ErrUnknownChampion
}
