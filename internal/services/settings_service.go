package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

const (
	SettingGeminiAPIKey = "gemini_api_key"
	SettingOpenAIAPIKey = "openai_api_key"
	SettingPlacesAPIKey = "places_api_key"
	SettingAIProvider   = "ai_provider"
)

var knownSettings = []string{SettingGeminiAPIKey, SettingOpenAIAPIKey, SettingPlacesAPIKey, SettingAIProvider}

type SettingsServiceInterface interface {
	// Load reads every known setting from the store into memory.
	Load(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete clears a stored value so the environment default applies again.
	Delete(ctx context.Context, key string) error
	// Lookup returns the in-memory value or "" without touching the store.
	Lookup(key string) string
}

type SettingsService struct {
	store repositories.KVStore

	mu     sync.RWMutex
	values map[string]string
}

func NewSettingsService(store repositories.KVStore) SettingsServiceInterface {
	return &SettingsService{
		store:  store,
		values: make(map[string]string),
	}
}

func IsKnownSetting(key string) bool {
	for _, k := range knownSettings {
		if k == key {
			return true
		}
	}
	return false
}

func (s *SettingsService) Load(ctx context.Context) error {
	loaded := make(map[string]string, len(knownSettings))
	for _, key := range knownSettings {
		v, ok, err := s.store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("load setting %s: %w", key, err)
		}
		if ok {
			loaded[key] = v
		}
	}

	s.mu.Lock()
	s.values = loaded
	s.mu.Unlock()

	zap.L().Info("settings loaded", zap.Int("count", len(loaded)))
	return nil
}

func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	if !IsKnownSetting(key) {
		return "", fmt.Errorf("%w: unknown setting %q", utils.ErrInvalidInput, key)
	}

	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", utils.ErrSettingNotFound
	}

	s.mu.Lock()
	s.values[key] = v
	s.mu.Unlock()
	return v, nil
}

func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	if !IsKnownSetting(key) {
		return fmt.Errorf("%w: unknown setting %q", utils.ErrInvalidInput, key)
	}
	value = strings.TrimSpace(value)
	if key == SettingAIProvider {
		value = strings.ToLower(value)
		switch value {
		case utils.ProviderGemini, utils.ProviderGenAI, utils.ProviderOpenAI:
		default:
			return fmt.Errorf("%w: unsupported provider %q", utils.ErrInvalidInput, value)
		}
	}

	if err := s.store.Set(ctx, key, value); err != nil {
		return err
	}

	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *SettingsService) Delete(ctx context.Context, key string) error {
	if !IsKnownSetting(key) {
		return fmt.Errorf("%w: unknown setting %q", utils.ErrInvalidInput, key)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

func (s *SettingsService) Lookup(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// MaskSecret hides all but the last four characters of an API key.
func MaskSecret(key, value string) string {
	if !strings.HasSuffix(key, "_api_key") || value == "" {
		return value
	}
	if len(value) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
