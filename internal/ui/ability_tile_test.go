package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/lol-cooldowns/internal/cooldown"
	"github.com/ytget/lol-cooldowns/internal/model"
)

func scalingAbility(level int) model.AbilityState {
	return model.AbilityState{ID: "AhriQ", Name: "Orb of Deception", Cooldowns: []float64{7, 7.5, 8, 8.5, 9}, Level: level}
}

func TestAbilityTile_ButtonStates(t *testing.T) {
	test.NewApp()

	tests := []struct {
		name          string
		ability       model.AbilityState
		label         string
		minusDisabled bool
		plusDisabled  bool
	}{
		{"first rank", scalingAbility(1), "1", true, false},
		{"middle rank", scalingAbility(3), "3", false, false},
		{"max rank", scalingAbility(5), "5", false, true},
		{"fixed", model.AbilityState{ID: "AhriE", Cooldowns: []float64{12, 12}, Level: model.FixedLevel}, "X", true, true},
	}

	for _, tc := range tests {
		tile := NewAbilityTile(tc.ability)

		if tile.levelLabel.Text != tc.label {
			t.Errorf("%s: expected label %s, got %s", tc.name, tc.label, tile.levelLabel.Text)
		}
		if tile.minusBtn.Disabled() != tc.minusDisabled {
			t.Errorf("%s: expected minus disabled=%v", tc.name, tc.minusDisabled)
		}
		if tile.plusBtn.Disabled() != tc.plusDisabled {
			t.Errorf("%s: expected plus disabled=%v", tc.name, tc.plusDisabled)
		}
	}
}

func TestAbilityTile_SetAbilityUpdatesControls(t *testing.T) {
	test.NewApp()

	tile := NewAbilityTile(scalingAbility(4))
	tile.SetAbility(scalingAbility(5))

	if tile.levelLabel.Text != "5" {
		t.Errorf("Expected label 5, got %s", tile.levelLabel.Text)
	}
	if !tile.plusBtn.Disabled() {
		t.Error("Expected plus button disabled at max rank")
	}
	if tile.minusBtn.Disabled() {
		t.Error("Expected minus button enabled at max rank")
	}
}

func TestAbilityTile_Callbacks(t *testing.T) {
	test.NewApp()

	tile := NewAbilityTile(scalingAbility(2))

	var started string
	var adjusted []int
	tile.SetCallbacks(
		func(abilityID string) { started = abilityID },
		func(abilityID string, delta int) { adjusted = append(adjusted, delta) },
	)

	test.Tap(tile.iconArea)
	if started != "AhriQ" {
		t.Errorf("Expected countdown start for AhriQ, got %q", started)
	}

	test.Tap(tile.plusBtn)
	test.Tap(tile.minusBtn)
	if len(adjusted) != 2 || adjusted[0] != 1 || adjusted[1] != -1 {
		t.Errorf("Expected adjustments [1 -1], got %v", adjusted)
	}
}

func TestAbilityTile_DisabledButtonsDoNothing(t *testing.T) {
	test.NewApp()

	tile := NewAbilityTile(model.AbilityState{ID: "AhriE", Cooldowns: []float64{12}, Level: model.FixedLevel})

	called := false
	tile.SetCallbacks(func(string) {}, func(string, int) { called = true })

	test.Tap(tile.plusBtn)
	test.Tap(tile.minusBtn)
	if called {
		t.Error("Expected no adjustment for a fixed ability")
	}
}

func TestAbilityTile_Countdown(t *testing.T) {
	test.NewApp()

	tile := NewAbilityTile(scalingAbility(1))
	key := cooldown.Key{Champion: "Ahri", Ability: "AhriQ"}

	if tile.ApplyUpdate(cooldown.Update{SessionID: "x", Key: key, Label: "1.0s"}) {
		t.Error("Expected update to be ignored while idle")
	}

	session := cooldown.NewSession(key, 7)
	tile.ShowCountdown(*session)
	if !tile.IsCounting() {
		t.Fatal("Expected tile to be counting")
	}
	if tile.OverlayText() != "7.0s" {
		t.Errorf("Expected overlay 7.0s, got %s", tile.OverlayText())
	}

	if !tile.ApplyUpdate(cooldown.Update{SessionID: session.ID, Key: key, Remaining: 6.9, Label: "6.9s"}) {
		t.Error("Expected current session update to apply")
	}
	if tile.OverlayText() != "6.9s" {
		t.Errorf("Expected overlay 6.9s, got %s", tile.OverlayText())
	}

	// a replaced session must not touch the overlay
	replacement := cooldown.NewSession(key, 7)
	tile.ShowCountdown(*replacement)
	if tile.ApplyUpdate(cooldown.Update{SessionID: session.ID, Key: key, Done: true}) {
		t.Error("Expected stale done update to be ignored")
	}
	if !tile.IsCounting() {
		t.Error("Expected tile to keep counting after stale done")
	}

	if !tile.ApplyUpdate(cooldown.Update{SessionID: replacement.ID, Key: key, Done: true}) {
		t.Error("Expected done update to apply")
	}
	if tile.IsCounting() {
		t.Error("Expected overlay removed after done")
	}
	if tile.overlay.Visible() || tile.overlayText.Visible() {
		t.Error("Expected overlay hidden after done")
	}
}

func TestAbilityTile_SetIcon(t *testing.T) {
	test.NewApp()

	tile := NewAbilityTile(scalingAbility(1))
	if tile.icon.Resource == nil {
		t.Fatal("Expected placeholder icon initially")
	}

	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	tile.SetIcon(img)
	if tile.icon.Image != img || tile.icon.Resource != nil {
		t.Error("Expected decoded icon to replace the placeholder")
	}

	tile.SetIcon(nil)
	if tile.icon.Resource == nil || tile.icon.Image != nil {
		t.Error("Expected placeholder for missing icon")
	}
}
