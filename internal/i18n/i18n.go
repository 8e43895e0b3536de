package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

const (
	LangEN = "en"
	LangRU = "ru"
)

//go:embed locales/*.json
var localeFiles embed.FS

// Manager holds the message catalogues and picks a language per request.
type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
	matcher         language.Matcher
}

func NewManager(defaultLanguage string) (*Manager, error) {
	return newManagerFromFS(defaultLanguage, localeFiles, "locales")
}

func newManagerFromFS(defaultLanguage string, files fs.FS, dir string) (*Manager, error) {
	manager := &Manager{locales: map[string]map[string]string{}}

	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		lang := strings.ToLower(strings.TrimSuffix(entry.Name(), ".json"))
		content, err := fs.ReadFile(files, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", lang)
		}
		manager.locales[lang] = messages
		manager.supported = append(manager.supported, lang)
	}

	if _, ok := manager.locales[LangEN]; !ok {
		return nil, fmt.Errorf("required locale %q missing", LangEN)
	}
	sort.Strings(manager.supported)

	// English first so the matcher falls back to it on no match.
	tags := []language.Tag{language.English}
	for _, lang := range manager.supported {
		if lang == LangEN {
			continue
		}
		tags = append(tags, language.Make(lang))
	}
	manager.matcher = language.NewMatcher(tags)

	manager.defaultLanguage = LangEN
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	result := make([]string, len(manager.supported))
	copy(result, manager.supported)
	return result
}

// NormalizeLanguage maps a tag like "ru_RU" or "en-GB" onto a supported
// catalogue, falling back to the default language.
func (manager *Manager) NormalizeLanguage(raw string) string {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(raw), "_", "-"))
	if err != nil {
		return manager.defaultLanguage
	}
	base, _ := tag.Base()
	if manager.isSupported(base.String()) {
		return base.String()
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage picks the best supported catalogue for an
// Accept-Language header.
func (manager *Manager) DetectFromAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return manager.defaultLanguage
	}
	_, index, confidence := manager.matcher.Match(tags...)
	if confidence == language.No {
		return manager.defaultLanguage
	}
	if index == 0 {
		return LangEN
	}
	others := make([]string, 0, len(manager.supported))
	for _, lang := range manager.supported {
		if lang != LangEN {
			others = append(others, lang)
		}
	}
	return others[index-1]
}

func (manager *Manager) Translate(lang string, key string) string {
	target := manager.NormalizeLanguage(lang)
	if value := strings.TrimSpace(manager.locales[target][key]); value != "" {
		return manager.locales[target][key]
	}
	if value := strings.TrimSpace(manager.locales[manager.defaultLanguage][key]); value != "" {
		return manager.locales[manager.defaultLanguage][key]
	}
	if value := strings.TrimSpace(manager.locales[LangEN][key]); value != "" {
		return manager.locales[LangEN][key]
	}
	return key
}

func (manager *Manager) Translatef(lang string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(lang, key), args...)
}

func (manager *Manager) isSupported(lang string) bool {
	_, ok := manager.locales[lang]
	return ok
}
