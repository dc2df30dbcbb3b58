package model

import "testing"

func TestScales(t *testing.T) {
	tests := []struct {
		cooldowns []float64
		expected  bool
	}{
		{nil, false},
		{[]float64{8}, false},
		{[]float64{8, 8, 8, 8, 8}, false},
		{[]float64{10, 8, 6, 4}, true},
		{[]float64{120, 100, 80}, true},
		{[]float64{5, 5, 4}, false}, // only the first two ranks are compared
	}

	for _, test := range tests {
		result := Scales(test.cooldowns)
		if result != test.expected {
			t.Errorf("Scales(%v) = %v, expected %v", test.cooldowns, result, test.expected)
		}
	}
}

func TestNewAbilityState_Level(t *testing.T) {
	scaling := NewAbilityState("AhriQ", "Orb of Deception", "AhriQ.png", []float64{7, 7.5, 7, 6.5, 6})
	if scaling.Level != 1 {
		t.Errorf("Expected scaling ability to start at level 1, got %d", scaling.Level)
	}
	if scaling.LevelText() != "1" {
		t.Errorf("Expected level text '1', got '%s'", scaling.LevelText())
	}

	fixed := NewAbilityState("AhriW", "Fox-Fire", "AhriW.png", []float64{9, 9, 9, 9, 9})
	if fixed.Level != FixedLevel {
		t.Errorf("Expected fixed ability to use FixedLevel, got %d", fixed.Level)
	}
	if fixed.LevelText() != FixedLevelText {
		t.Errorf("Expected level text '%s', got '%s'", FixedLevelText, fixed.LevelText())
	}
}

func TestNewAbilityState_CopiesTable(t *testing.T) {
	table := []float64{10, 8, 6, 4}
	ability := NewAbilityState("Q", "", "", table)
	table[0] = 99

	if ability.Cooldowns[0] != 10 {
		t.Errorf("Expected cooldown table to be copied, got %v", ability.Cooldowns)
	}
}

func TestAbilityState_BaseCooldown(t *testing.T) {
	tests := []struct {
		cooldowns []float64
		level     int
		expected  float64
	}{
		{[]float64{10, 8, 6, 4}, 1, 10},
		{[]float64{10, 8, 6, 4}, 2, 8},
		{[]float64{10, 8, 6, 4}, 4, 4},
		{[]float64{10, 8, 6, 4}, 9, 4},
		{[]float64{12, 12, 12}, FixedLevel, 12},
		{[]float64{}, FixedLevel, 0},
	}

	for _, test := range tests {
		ability := &AbilityState{Cooldowns: test.cooldowns, Level: test.level}
		result := ability.BaseCooldown()
		if result != test.expected {
			t.Errorf("BaseCooldown() with table=%v level=%d = %v, expected %v",
				test.cooldowns, test.level, result, test.expected)
		}
	}
}

func TestAbilityState_Bounds(t *testing.T) {
	tests := []struct {
		level        int
		canIncrement bool
		canDecrement bool
	}{
		{1, true, false},
		{2, true, true},
		{4, false, true},
	}

	for _, test := range tests {
		ability := &AbilityState{Cooldowns: []float64{10, 8, 6, 4}, Level: test.level}
		if ability.CanIncrement() != test.canIncrement {
			t.Errorf("CanIncrement() at level %d = %v, expected %v", test.level, ability.CanIncrement(), test.canIncrement)
		}
		if ability.CanDecrement() != test.canDecrement {
			t.Errorf("CanDecrement() at level %d = %v, expected %v", test.level, ability.CanDecrement(), test.canDecrement)
		}
	}

	fixed := NewAbilityState("W", "", "", []float64{9, 9, 9})
	if fixed.CanIncrement() || fixed.CanDecrement() {
		t.Error("Fixed ability should not allow level changes")
	}
}

func TestTrackedChampion_CloneIsDeep(t *testing.T) {
	champion := &TrackedChampion{
		Name:         "Ahri",
		AbilityHaste: 20,
		Abilities: []*AbilityState{
			NewAbilityState("AhriQ", "", "", []float64{7, 6}),
		},
	}

	clone := champion.Clone()
	clone.Abilities[0].Level = 2
	clone.Abilities[0].Cooldowns[0] = 1

	if champion.Abilities[0].Level != 1 {
		t.Errorf("Expected original level to stay 1, got %d", champion.Abilities[0].Level)
	}
	if champion.Abilities[0].Cooldowns[0] != 7 {
		t.Errorf("Expected original cooldown to stay 7, got %v", champion.Abilities[0].Cooldowns[0])
	}

	if _, ok := clone.Ability("AhriQ"); !ok {
		t.Error("Expected clone to contain AhriQ")
	}
	if _, ok := clone.Ability("AhriR"); ok {
		t.Error("Expected AhriR to be absent")
	}
}
