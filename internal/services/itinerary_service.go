package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"
	"go.uber.org/zap"

	"tripweaver/internal/config"
	"tripweaver/internal/itinerary"
	"tripweaver/internal/itinerary/persona"
	"tripweaver/internal/observability"
	"tripweaver/pkg/utils"
)

// ParsedItinerary is the display form of an itinerary. When Structured is
// false Days is empty and Text holds the normalized source to show as is.
type ParsedItinerary struct {
	Days       []itinerary.EnrichedDay `json:"days"`
	Structured bool                    `json:"structured"`
	Text       string                  `json:"text,omitempty"`
}

type ItineraryResult struct {
	Content    itinerary.GeneratedItineraryContent `json:"content"`
	Days       []itinerary.EnrichedDay             `json:"days"`
	Structured bool                                `json:"structured"`
}

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, prefs itinerary.TravelPreferences) (*ItineraryResult, error)
	Parse(ctx context.Context, content string, start *time.Time, personaID string) (*ParsedItinerary, error)
}

// GeneratorFactory builds a text generator for the resolved provider.
type GeneratorFactory func(cfg utils.GeneratorConfig) (utils.TextGenerator, error)

type ItineraryService struct {
	cfg          *config.Config
	settings     SettingsServiceInterface
	plans        PlanServiceInterface
	newGenerator GeneratorFactory
	cache        *otter.Cache[string, *ParsedItinerary]
}

func NewItineraryService(
	cfg *config.Config,
	settings SettingsServiceInterface,
	plans PlanServiceInterface,
	newGenerator GeneratorFactory,
) ItineraryServiceInterface {
	if newGenerator == nil {
		newGenerator = utils.NewTextGenerator
	}
	size := cfg.ParseCacheSize
	if size <= 0 {
		size = 512
	}
	return &ItineraryService{
		cfg:          cfg,
		settings:     settings,
		plans:        plans,
		newGenerator: newGenerator,
		cache: otter.Must(&otter.Options[string, *ParsedItinerary]{
			MaximumSize: size,
		}),
	}
}

// Generate asks the configured model for an itinerary exactly once, then
// normalizes, parses and saves it. Saving is best effort.
func (s *ItineraryService) Generate(ctx context.Context, prefs itinerary.TravelPreferences) (*ItineraryResult, error) {
	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	generator, err := s.newGenerator(s.generatorConfig())
	if err != nil {
		return nil, err
	}

	raw, err := generator.Generate(ctx, BuildItineraryPrompt(prefs))
	if err != nil {
		observability.RecordGenerationFailure()
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamGeneration, err)
	}
	if strings.TrimSpace(raw) == "" {
		observability.RecordGenerationFailure()
		return nil, fmt.Errorf("%w: empty response", utils.ErrUpstreamGeneration)
	}

	content := itinerary.NormalizeGeneratedContent(raw, prefs)

	var start *time.Time
	if !prefs.StartDate.IsZero() {
		start = &prefs.StartDate
	}
	parsed, err := s.Parse(ctx, content.Content, start, prefs.Persona)
	if err != nil {
		return nil, err
	}

	if record, err := s.plans.SavePlan(ctx, content, prefs); err != nil {
		zap.L().Warn("failed to save generated plan", zap.String("slug", content.Slug), zap.Error(err))
	} else {
		content.Slug = record.Slug
	}

	return &ItineraryResult{
		Content:    content,
		Days:       parsed.Days,
		Structured: parsed.Structured,
	}, nil
}

// Parse structures and enriches itinerary text. Results are memoized per
// content, start date and persona.
func (s *ItineraryService) Parse(_ context.Context, content string, start *time.Time, personaID string) (*ParsedItinerary, error) {
	p := persona.Parse(personaID)
	key := parseCacheKey(content, start, p)
	if cached, ok := s.cache.GetIfPresent(key); ok {
		observability.RecordParse(observability.ParseCached)
		return cached, nil
	}

	days := itinerary.ParseItineraryDays(content, start)
	result := &ParsedItinerary{Days: itinerary.EnrichDays(days, p), Structured: len(days) > 0}
	if result.Structured {
		observability.RecordParse(observability.ParseStructured)
	} else {
		result.Text = itinerary.Normalize(content)
		observability.RecordParse(observability.ParseUnstructured)
	}

	s.cache.Set(key, result)
	return result, nil
}

// parseCacheKey keys on the full start instant and zone since parsed dates
// carry the caller's location. Without a start the key is today's date.
func parseCacheKey(content string, start *time.Time, p persona.Persona) string {
	anchor := "today:" + utils.FormatDate(time.Now())
	if start != nil {
		anchor = start.Format(time.RFC3339)
	}
	h := sha256.New()
	h.Write([]byte(content))
	h.Write([]byte{0})
	h.Write([]byte(anchor))
	h.Write([]byte{0})
	h.Write([]byte(p))
	return hex.EncodeToString(h.Sum(nil))
}

// generatorConfig resolves provider and key, preferring stored settings over
// the environment.
func (s *ItineraryService) generatorConfig() utils.GeneratorConfig {
	provider := firstNonEmpty(s.settings.Lookup(SettingAIProvider), s.cfg.AIProvider, utils.ProviderGemini)

	cfg := utils.GeneratorConfig{Provider: provider, GCPProject: s.cfg.GCPProject}
	switch provider {
	case utils.ProviderOpenAI:
		cfg.APIKey = firstNonEmpty(s.settings.Lookup(SettingOpenAIAPIKey), s.cfg.OpenAIAPIKey)
		cfg.Model = s.cfg.OpenAIModel
	default:
		cfg.APIKey = firstNonEmpty(s.settings.Lookup(SettingGeminiAPIKey), s.cfg.GeminiAPIKey)
		cfg.Model = s.cfg.GeminiModel
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
