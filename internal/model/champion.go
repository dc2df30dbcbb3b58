package model

import "strconv"

// FixedLevel marks an ability whose cooldown does not change with rank
const FixedLevel = 0

// FixedLevelText is shown instead of a rank for fixed abilities
const FixedLevelText = "X"

// AbilityState represents a single tracked ability of a champion
type AbilityState struct {
	ID        string    // Data Dragon spell id (e.g. "AhriQ")
	Name      string    // display name
	IconFile  string    // image file name under img/spell/
	Cooldowns []float64 // cooldown per rank, index 0 = rank 1
	Level     int       // 1..MaxLevel, or FixedLevel
}

// TrackedChampion represents a champion on the roster
type TrackedChampion struct {
	Name         string
	AbilityHaste int
	Abilities    []*AbilityState // Data Dragon order (Q, W, E, R)
}

// Scales reports whether the cooldown table differs between the first two ranks
func Scales(cooldowns []float64) bool {
	return len(cooldowns) > 1 && cooldowns[0] != cooldowns[1]
}

// NewAbilityState creates ability state with its level set to 1 for scaling
// abilities and FixedLevel otherwise
func NewAbilityState(id, name, iconFile string, cooldowns []float64) *AbilityState {
	table := make([]float64, len(cooldowns))
	copy(table, cooldowns)

	level := FixedLevel
	if Scales(table) {
		level = 1
	}

	return &AbilityState{
		ID:        id,
		Name:      name,
		IconFile:  iconFile,
		Cooldowns: table,
		Level:     level,
	}
}

// IsFixed returns true if the ability has a single cooldown for every rank
func (a *AbilityState) IsFixed() bool {
	return a.Level == FixedLevel
}

// MaxLevel returns the highest rank of the ability
func (a *AbilityState) MaxLevel() int {
	return len(a.Cooldowns)
}

// CanIncrement returns true if the rank can be raised by one
func (a *AbilityState) CanIncrement() bool {
	return !a.IsFixed() && a.Level < a.MaxLevel()
}

// CanDecrement returns true if the rank can be lowered by one
func (a *AbilityState) CanDecrement() bool {
	return !a.IsFixed() && a.Level > 1
}

// BaseCooldown returns the cooldown at the current rank, or the first entry
// for fixed abilities. Returns 0 if the table is empty.
func (a *AbilityState) BaseCooldown() float64 {
	if len(a.Cooldowns) == 0 {
		return 0
	}
	if a.IsFixed() {
		return a.Cooldowns[0]
	}

	idx := a.Level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(a.Cooldowns) {
		idx = len(a.Cooldowns) - 1
	}
	return a.Cooldowns[idx]
}

// LevelText returns the rank label shown under the ability icon
func (a *AbilityState) LevelText() string {
	if a.IsFixed() {
		return FixedLevelText
	}
	return strconv.Itoa(a.Level)
}

// Clone returns a copy of the ability state
func (a *AbilityState) Clone() *AbilityState {
	c := *a
	c.Cooldowns = make([]float64, len(a.Cooldowns))
	copy(c.Cooldowns, a.Cooldowns)
	return &c
}

// Ability returns the ability with the given id
func (tc *TrackedChampion) Ability(id string) (*AbilityState, bool) {
	for _, ability := range tc.Abilities {
		if ability.ID == id {
			return ability, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the champion
func (tc *TrackedChampion) Clone() TrackedChampion {
	c := TrackedChampion{
		Name:         tc.Name,
		AbilityHaste: tc.AbilityHaste,
		Abilities:    make([]*AbilityState, 0, len(tc.Abilities)),
	}
	for _, ability := range tc.Abilities {
		c.Abilities = append(c.Abilities, ability.Clone())
	}
	return c
}
