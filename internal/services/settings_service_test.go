package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "tripweaver/pkg/memcache"
	"tripweaver/pkg/utils"
)

func TestSettingsServiceLoadAndLookup(t *testing.T) {
	ctx := context.Background()
	store := mem.NewKVStore()
	require.NoError(t, store.Set(ctx, SettingGeminiAPIKey, "stored-key"))
	require.NoError(t, store.Set(ctx, "unrelated", "x"))

	svc := NewSettingsService(store)
	assert.Empty(t, svc.Lookup(SettingGeminiAPIKey))

	require.NoError(t, svc.Load(ctx))
	assert.Equal(t, "stored-key", svc.Lookup(SettingGeminiAPIKey))
	assert.Empty(t, svc.Lookup("unrelated"))
}

func TestSettingsServiceGetSet(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(mem.NewKVStore())

	_, err := svc.Get(ctx, SettingPlacesAPIKey)
	assert.ErrorIs(t, err, utils.ErrSettingNotFound)

	require.NoError(t, svc.Set(ctx, SettingPlacesAPIKey, "  places-key "))
	v, err := svc.Get(ctx, SettingPlacesAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "places-key", v)

	require.NoError(t, svc.Set(ctx, SettingAIProvider, "OpenAI"))
	assert.Equal(t, "openai", svc.Lookup(SettingAIProvider))
}

func TestSettingsServiceRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(mem.NewKVStore())

	assert.ErrorIs(t, svc.Set(ctx, "theme", "dark"), utils.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set(ctx, SettingAIProvider, "llama"), utils.ErrInvalidInput)
	_, err := svc.Get(ctx, "theme")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSettingsServiceDelete(t *testing.T) {
	ctx := context.Background()
	store := mem.NewKVStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set(ctx, SettingGeminiAPIKey, "stored-key"))
	require.NoError(t, svc.Delete(ctx, SettingGeminiAPIKey))

	assert.Empty(t, svc.Lookup(SettingGeminiAPIKey))
	_, ok, err := store.Get(ctx, SettingGeminiAPIKey)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = svc.Get(ctx, SettingGeminiAPIKey)
	assert.ErrorIs(t, err, utils.ErrSettingNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "theme"), utils.ErrInvalidInput)
}

func TestSettingsServiceStoreFailure(t *testing.T) {
	svc := NewSettingsService(brokenStore{})
	assert.Error(t, svc.Load(context.Background()))
	assert.Error(t, svc.Set(context.Background(), SettingGeminiAPIKey, "k"))
	assert.Error(t, svc.Delete(context.Background(), SettingGeminiAPIKey))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "******cdef", MaskSecret(SettingGeminiAPIKey, "0123abcdef"))
	assert.Equal(t, "****", MaskSecret(SettingOpenAIAPIKey, "abc"))
	assert.Equal(t, "gemini", MaskSecret(SettingAIProvider, "gemini"))
	assert.Empty(t, MaskSecret(SettingPlacesAPIKey, ""))
}
