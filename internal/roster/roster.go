package roster

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"

	"github.com/ytget/lol-cooldowns/internal/ddragon"
	"github.com/ytget/lol-cooldowns/internal/model"
)

// MaxSuggestionDistance caps the edit distance of typo suggestions
const MaxSuggestionDistance = 2

// Roster holds the tracked champions
type Roster struct {
	source ddragon.DataSource

	mu        sync.RWMutex
	champions map[string]*model.TrackedChampion
	order     []string

	namesMu    sync.Mutex
	names      []string          // sorted canonical ids
	namesIndex map[string]string // search key of id or display name -> canonical id

	onUpdate func(model.TrackedChampion) // callback for UI updates
}

// NewRoster creates an empty roster backed by the given data source
func NewRoster(source ddragon.DataSource) *Roster {
	return &Roster{
		source:    source,
		champions: make(map[string]*model.TrackedChampion),
	}
}

// SetUpdateCallback sets the callback function for champion updates
func (r *Roster) SetUpdateCallback(callback func(model.TrackedChampion)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUpdate = callback
}

// NormalizeName trims the input and capitalizes it: first letter upper case,
// the rest lower case
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ParseHaste converts ability haste text to a value. Anything that is not a
// plain non-negative integer counts as 0.
func ParseHaste(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0
		}
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return value
}

// Add validates a champion name and starts tracking it
func (r *Roster) Add(ctx context.Context, name string) (model.TrackedChampion, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return model.TrackedChampion{}, &UnknownChampionError{Name: name}
	}

	if existing, ok := r.find(normalized); ok {
		return model.TrackedChampion{}, fmt.Errorf("%w: %s", ErrDuplicateChampion, existing)
	}

	canonical, err := r.resolveName(ctx, normalized)
	if err != nil {
		return model.TrackedChampion{}, err
	}

	if existing, ok := r.find(canonical); ok {
		return model.TrackedChampion{}, fmt.Errorf("%w: %s", ErrDuplicateChampion, existing)
	}

	abilities, err := r.source.ChampionAbilities(ctx, canonical)
	if err != nil {
		return model.TrackedChampion{}, fmt.Errorf("loading abilities for %s: %w", canonical, err)
	}

	champion := &model.TrackedChampion{
		Name:         canonical,
		AbilityHaste: 0,
		Abilities:    make([]*model.AbilityState, 0, len(abilities)),
	}
	for _, ability := range abilities {
		champion.Abilities = append(champion.Abilities,
			model.NewAbilityState(ability.ID, ability.Name, ability.IconFile, ability.Cooldowns))
	}

	r.mu.Lock()
	// Another Add for the same champion may have finished while we were fetching
	if _, exists := r.champions[canonical]; exists {
		r.mu.Unlock()
		return model.TrackedChampion{}, fmt.Errorf("%w: %s", ErrDuplicateChampion, canonical)
	}
	r.champions[canonical] = champion
	r.order = append(r.order, canonical)
	snapshot := champion.Clone()
	r.mu.Unlock()

	log.Printf("Champion added: %s (%d abilities)", canonical, len(champion.Abilities))
	r.notifyUpdate(snapshot)
	return snapshot, nil
}

// Get returns a copy of a tracked champion
func (r *Roster) Get(name string) (model.TrackedChampion, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	champion, ok := r.lookup(name)
	if !ok {
		return model.TrackedChampion{}, false
	}
	return champion.Clone(), true
}

// List returns copies of all tracked champions in insertion order
func (r *Roster) List() []model.TrackedChampion {
	r.mu.RLock()
	defer r.mu.RUnlock()

	champions := make([]model.TrackedChampion, 0, len(r.order))
	for _, name := range r.order {
		champions = append(champions, r.champions[name].Clone())
	}
	return champions
}

// SetAbilityHaste parses and stores the ability haste of a champion
func (r *Roster) SetAbilityHaste(name, text string) (int, error) {
	value := ParseHaste(text)

	r.mu.Lock()
	champion, ok := r.lookup(name)
	if !ok {
		r.mu.Unlock()
		return 0, fmt.Errorf("%w: %s", ErrChampionNotTracked, name)
	}
	changed := champion.AbilityHaste != value
	champion.AbilityHaste = value
	snapshot := champion.Clone()
	r.mu.Unlock()

	if changed {
		log.Printf("Ability haste for %s set to %d", snapshot.Name, value)
		r.notifyUpdate(snapshot)
	}
	return value, nil
}

// AdjustLevel moves an ability level by delta. Moves that would leave
// [1, max level] are ignored without error.
func (r *Roster) AdjustLevel(name, abilityID string, delta int) (model.AbilityState, error) {
	r.mu.Lock()
	champion, ability, err := r.lookupAbility(name, abilityID)
	if err != nil {
		r.mu.Unlock()
		return model.AbilityState{}, err
	}

	if ability.IsFixed() {
		state := *ability.Clone()
		r.mu.Unlock()
		return state, fmt.Errorf("%w: %s", ErrFixedCooldown, abilityID)
	}

	newLevel := ability.Level + delta
	changed := false
	if newLevel >= 1 && newLevel <= ability.MaxLevel() && newLevel != ability.Level {
		ability.Level = newLevel
		changed = true
	}
	state := *ability.Clone()
	snapshot := champion.Clone()
	r.mu.Unlock()

	if changed {
		log.Printf("Level of %s %s set to %d", snapshot.Name, abilityID, state.Level)
		r.notifyUpdate(snapshot)
	}
	return state, nil
}

// Snapshot returns the ability state and ability haste used to start a countdown
func (r *Roster) Snapshot(name, abilityID string) (model.AbilityState, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	champion, ability, err := r.lookupAbility(name, abilityID)
	if err != nil {
		return model.AbilityState{}, 0, err
	}
	return *ability.Clone(), champion.AbilityHaste, nil
}

// resolveName maps a normalized name to its canonical Data Dragon id
func (r *Roster) resolveName(ctx context.Context, normalized string) (string, error) {
	r.namesMu.Lock()
	defer r.namesMu.Unlock()

	if r.namesIndex == nil {
		valid, err := r.source.ChampionNames(ctx)
		if err != nil {
			return "", fmt.Errorf("loading champion names: %w", err)
		}

		names := make([]string, 0, len(valid))
		index := make(map[string]string, len(valid)*2)
		for id, display := range valid {
			names = append(names, id)
			index[searchKey(id)] = id
			if key := searchKey(display); key != "" {
				if _, taken := index[key]; !taken {
					index[key] = id
				}
			}
		}
		sort.Strings(names)

		r.names = names
		r.namesIndex = index
	}

	canonical, ok := r.namesIndex[searchKey(normalized)]
	if !ok {
		return "", &UnknownChampionError{Name: normalized, Suggestion: suggest(normalized, r.names, r.namesIndex)}
	}
	return canonical, nil
}

// find looks a champion up case-insensitively and returns its tracked name
func (r *Roster) find(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	champion, ok := r.lookup(name)
	if !ok {
		return "", false
	}
	return champion.Name, true
}

// lookup expects r.mu to be held
func (r *Roster) lookup(name string) (*model.TrackedChampion, bool) {
	if champion, ok := r.champions[name]; ok {
		return champion, true
	}
	for key, champion := range r.champions {
		if strings.EqualFold(key, name) {
			return champion, true
		}
	}
	return nil, false
}

// lookupAbility expects r.mu to be held
func (r *Roster) lookupAbility(name, abilityID string) (*model.TrackedChampion, *model.AbilityState, error) {
	champion, ok := r.lookup(name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrChampionNotTracked, name)
	}
	ability, ok := champion.Ability(abilityID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s %s", ErrAbilityNotFound, champion.Name, abilityID)
	}
	return champion, ability, nil
}

// notifyUpdate calls the update callback if set
func (r *Roster) notifyUpdate(champion model.TrackedChampion) {
	r.mu.RLock()
	callback := r.onUpdate
	r.mu.RUnlock()

	if callback != nil {
		callback(champion)
	}
}

// searchKey lower-cases a name and drops everything but letters and digits,
// so "Kai'Sa", "Lee Sin" and "kaisa" share a key
func searchKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// suggest returns the closest valid champion id for a rejected name, or "".
// In-order fuzzy matches ("fortune" -> MissFortune) win; otherwise the
// nearest id or display name by edit distance ("Gsren" -> Garen).
func suggest(name string, names []string, index map[string]string) string {
	if name == "" || len(names) == 0 {
		return ""
	}
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		return matches[0].Str
	}
	return closest(searchKey(name), index)
}

// closest returns the id whose search key is within the distance limit of
// key, preferring the smallest distance and then the smallest id
func closest(key string, index map[string]string) string {
	limit := min(MaxSuggestionDistance, len([]rune(key))/3)
	if limit < 1 {
		return ""
	}

	best, bestDistance := "", limit+1
	for candidate, id := range index {
		d := levenshtein.ComputeDistance(key, candidate)
		if d < bestDistance || (d == bestDistance && id < best) {
			best, bestDistance = id, d
		}
	}
	if bestDistance > limit {
		return ""
	}
	return best
}
