package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrUpstreamGeneration     = errors.New("itinerary generation failed")
	ErrServiceNotEnabled      = errors.New("upstream service not enabled")
	ErrUpstreamLookup         = errors.New("destination lookup failed")
	ErrMalformedPersistedPlan = errors.New("malformed persisted plans")
	ErrPlanNotFound           = errors.New("plan not found")
	ErrSettingNotFound        = errors.New("setting not found")
	ErrMissingCredentials     = errors.New("missing api credentials")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrDatabaseError          = errors.New("database error")
)
