package services

import (
	"context"
	"errors"

	"tripweaver/internal/config"
	"tripweaver/internal/repositories"
	mem "tripweaver/pkg/memcache"
	"tripweaver/pkg/places"
	"tripweaver/pkg/utils"
)

type fakeGenerator struct {
	out     string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.out, f.err
}

type fakePlaces struct {
	photo   string
	preds   []places.Prediction
	err     error
	lookups int
}

func (f *fakePlaces) PhotoURL(context.Context, string) (string, error) {
	f.lookups++
	return f.photo, f.err
}

func (f *fakePlaces) Predictions(context.Context, string) ([]places.Prediction, error) {
	f.lookups++
	return f.preds, f.err
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store offline")
}

func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("store offline")
}

func (brokenStore) Delete(context.Context, string) error {
	return errors.New("store offline")
}

func testConfig() *config.Config {
	return &config.Config{
		AIProvider:     utils.ProviderGemini,
		GeminiAPIKey:   "env-gemini",
		GeminiModel:    "gemini-test",
		OpenAIModel:    "gpt-test",
		PlacesAPIKey:   "env-places",
		ParseCacheSize: 16,
	}
}

func newMemServices() (SettingsServiceInterface, PlanServiceInterface, repositories.KVStore) {
	store := mem.NewKVStore()
	return NewSettingsService(store), NewPlanService(repositories.NewPlanRepository(store)), store
}
