package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"
	"go.uber.org/zap"

	"tripweaver/internal/config"
	"tripweaver/internal/observability"
	"tripweaver/pkg/places"
	"tripweaver/pkg/utils"
)

const destinationImageTTL = 24 * time.Hour

// PlacesLookup is the part of the Places client the service uses.
type PlacesLookup interface {
	PhotoURL(ctx context.Context, query string) (string, error)
	Predictions(ctx context.Context, input string) ([]places.Prediction, error)
}

type PlacesFactory func(apiKey string) PlacesLookup

type DestinationServiceInterface interface {
	ImageURL(ctx context.Context, query string) (string, error)
	Predictions(ctx context.Context, input string) ([]places.Prediction, error)
}

type DestinationService struct {
	cfg       *config.Config
	settings  SettingsServiceInterface
	newClient PlacesFactory
	images    *otter.Cache[string, string]
}

func NewDestinationService(cfg *config.Config, settings SettingsServiceInterface, newClient PlacesFactory) DestinationServiceInterface {
	if newClient == nil {
		newClient = func(apiKey string) PlacesLookup {
			return places.NewClient(apiKey, nil, zap.L())
		}
	}
	return &DestinationService{
		cfg:       cfg,
		settings:  settings,
		newClient: newClient,
		images: otter.Must(&otter.Options[string, string]{
			MaximumSize:      1_000,
			ExpiryCalculator: otter.ExpiryWriting[string, string](destinationImageTTL),
		}),
	}
}

func (s *DestinationService) client() (PlacesLookup, error) {
	apiKey := firstNonEmpty(s.settings.Lookup(SettingPlacesAPIKey), s.cfg.PlacesAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: places api key", utils.ErrMissingCredentials)
	}
	return s.newClient(apiKey), nil
}

func (s *DestinationService) ImageURL(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: query is required", utils.ErrInvalidInput)
	}
	key := strings.ToLower(query)
	if u, ok := s.images.GetIfPresent(key); ok {
		return u, nil
	}

	client, err := s.client()
	if err != nil {
		return "", err
	}
	u, err := client.PhotoURL(ctx, query)
	recordLookup(err)
	if err != nil {
		return "", err
	}
	if u != "" {
		s.images.Set(key, u)
	}
	return u, nil
}

func (s *DestinationService) Predictions(ctx context.Context, input string) ([]places.Prediction, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []places.Prediction{}, nil
	}

	client, err := s.client()
	if err != nil {
		return nil, err
	}
	preds, err := client.Predictions(ctx, input)
	recordLookup(err)
	if err != nil {
		return nil, err
	}
	return preds, nil
}

func recordLookup(err error) {
	switch {
	case err == nil:
		observability.RecordDestinationLookup(observability.LookupOK)
	case places.IsServiceNotEnabled(err):
		observability.RecordDestinationLookup(observability.LookupNotEnabled)
	default:
		observability.RecordDestinationLookup(observability.LookupError)
	}
}
