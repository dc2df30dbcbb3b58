package ddragon

import (
	"context"
	"image"
)

// DataSource defines the champion metadata lookups used by the roster.
type DataSource interface {
	// ChampionNames returns valid champion ids mapped to display names
	// (e.g. "MonkeyKing" -> "Wukong")
	ChampionNames(ctx context.Context) (map[string]string, error)

	// ChampionAbilities returns the champion's abilities in Q, W, E, R order
	ChampionAbilities(ctx context.Context, name string) ([]Ability, error)
}

// IconSource defines the ability icon lookups used by the UI.
type IconSource interface {
	AbilityIcon(ctx context.Context, name, abilityID string) ([]byte, error)

	// AbilityIcons fetches, decodes and resizes every ability icon of a
	// champion. Abilities whose icon failed are reported in the error map.
	AbilityIcons(ctx context.Context, name string, size int) (map[string]image.Image, map[string]error)
}
