package i18n

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
)

func TestLocaleKeysParity(t *testing.T) {
	en := mustLoadLocaleMessages(t, LangEN)
	ru := mustLoadLocaleMessages(t, LangRU)

	if missing := missingKeys(en, ru); len(missing) > 0 {
		t.Errorf("keys missing in ru locale: %s", strings.Join(missing, ", "))
	}
	if missing := missingKeys(ru, en); len(missing) > 0 {
		t.Errorf("keys missing in en locale: %s", strings.Join(missing, ", "))
	}
}

func TestDetectFromAcceptLanguage(t *testing.T) {
	manager, err := NewManager(LangEN)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: LangEN},
		{header: "ru-RU,ru;q=0.9,en;q=0.8", want: LangRU},
		{header: "de-DE,de;q=0.9", want: LangEN},
		{header: "fr;q=0.9, en-GB;q=0.8", want: LangEN},
		{header: "de;q=0.9, ru;q=0.5", want: LangRU},
	}
	for _, tc := range tests {
		t.Run(tc.header, func(t *testing.T) {
			if got := manager.DetectFromAcceptLanguage(tc.header); got != tc.want {
				t.Fatalf("DetectFromAcceptLanguage(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestTranslateFallsBackToKey(t *testing.T) {
	manager, err := NewManager("ru_RU")
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if manager.DefaultLanguage() != LangRU {
		t.Fatalf("expected ru default, got %q", manager.DefaultLanguage())
	}
	if got := manager.Translate(LangEN, "message.empty"); got != "Message cannot be empty." {
		t.Fatalf("unexpected english translation %q", got)
	}
	if got := manager.Translate(LangEN, "missing.key"); got != "missing.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func mustLoadLocaleMessages(t *testing.T, lang string) map[string]string {
	t.Helper()

	content, err := localeFiles.ReadFile("locales/" + lang + ".json")
	if err != nil {
		t.Fatalf("read locale %q: %v", lang, err)
	}
	messages := map[string]string{}
	if err := json.Unmarshal(content, &messages); err != nil {
		t.Fatalf("parse locale %q: %v", lang, err)
	}
	if len(messages) == 0 {
		t.Fatalf("locale %q is empty", lang)
	}
	return messages
}

func missingKeys(source map[string]string, target map[string]string) []string {
	missing := make([]string, 0)
	for key := range source {
		if _, ok := target[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
