package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

const (
	LangID = "id"
	LangEN = "en"
)

//go:embed locales/*.json
var localeFiles embed.FS

type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
}

func NewManager(defaultLanguage string) (*Manager, error) {
	manager := &Manager{
		locales: map[string]map[string]string{},
	}

	entries, err := fs.ReadDir(localeFiles, "locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}

	for _, entry := range entries {
		language := strings.TrimSuffix(strings.ToLower(entry.Name()), filepath.Ext(entry.Name()))
		content, err := fs.ReadFile(localeFiles, "locales/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", language, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", language, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", language)
		}

		manager.locales[language] = messages
		manager.supported = append(manager.supported, language)
	}

	if _, ok := manager.locales[LangID]; !ok {
		return nil, fmt.Errorf("required locale %q missing", LangID)
	}
	if _, ok := manager.locales[LangEN]; !ok {
		return nil, fmt.Errorf("required locale %q missing", LangEN)
	}

	sort.Strings(manager.supported)
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func (manager *Manager) NormalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if _, ok := manager.locales[language]; ok {
		return language
	}
	if manager.defaultLanguage != "" {
		return manager.defaultLanguage
	}
	return LangID
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) Supported() []string {
	supported := make([]string, len(manager.supported))
	copy(supported, manager.supported)
	return supported
}

// T resolves a message key for a language, falling back to the default
// language and finally to the key itself.
func (manager *Manager) T(language string, key string) string {
	if messages, ok := manager.locales[manager.NormalizeLanguage(language)]; ok {
		if message, ok := messages[key]; ok {
			return message
		}
	}
	if messages, ok := manager.locales[manager.defaultLanguage]; ok {
		if message, ok := messages[key]; ok {
			return message
		}
	}
	return key
}
