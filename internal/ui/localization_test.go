package ui

import "testing"

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyAddChampion); got != "Add Champion" {
		t.Errorf("Expected 'Add Champion', got %s", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"ru", "ru"},
		{"pt", "pt"},
		{"system", "en"},
		{"xx", "en"}, // unknown languages are ignored
	}

	for _, test := range tests {
		l := NewLocalization()
		l.SetLanguage(test.lang)
		if l.GetCurrentLanguage() != test.expected {
			t.Errorf("SetLanguage(%s): expected %s, got %s", test.lang, test.expected, l.GetCurrentLanguage())
		}
	}
}

func TestLocalization_UnknownKeyReturnsKey(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("Missing texts for language %s", code)
			continue
		}
		for key := range l.texts["en"] {
			if texts[key] == "" {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}

func TestSortedLanguageCodes(t *testing.T) {
	codes := sortedLanguageCodes(NewLocalization().GetAvailableLanguages())
	expected := []string{"en", "pt", "ru"}

	if len(codes) != len(expected) {
		t.Fatalf("Expected %d codes, got %d", len(expected), len(codes))
	}
	for i := range expected {
		if codes[i] != expected[i] {
			t.Errorf("Expected codes[%d] = %s, got %s", i, expected[i], codes[i])
		}
	}
}
