package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/config"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
	mem "tripweaver/pkg/memcache"
	"tripweaver/pkg/middleware"
	"tripweaver/pkg/places"
	"tripweaver/pkg/utils"
)

type stubGenerator struct{ out string }

func (s stubGenerator) Generate(context.Context, string) (string, error) { return s.out, nil }

type stubPlaces struct{}

func (stubPlaces) PhotoURL(_ context.Context, query string) (string, error) {
	return "https://img.example/" + query + ".jpg", nil
}

func (stubPlaces) Predictions(context.Context, string) ([]places.Prediction, error) {
	return []places.Prediction{{Description: "Paris, France", PlaceID: "p1"}}, nil
}

const generated = `{"title": "Weekend in Paris", "description": "Two days of food and art",
"content": "## Day 1\n9:00 AM - Breakfast at Café de Flore\n2:00 PM - Visit the Louvre Museum\n## Day 2\n7:00 PM - Dinner at Restaurant Le Cinq"}`

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{AIProvider: utils.ProviderGemini, GeminiAPIKey: "k", PlacesAPIKey: "p", ParseCacheSize: 16}
	store := mem.NewKVStore()
	settings := services.NewSettingsService(store)
	plans := services.NewPlanService(repositories.NewPlanRepository(store))
	itineraries := services.NewItineraryService(cfg, settings, plans, func(utils.GeneratorConfig) (utils.TextGenerator, error) {
		return stubGenerator{out: generated}, nil
	})
	destinations := services.NewDestinationService(cfg, settings, func(string) services.PlacesLookup { return stubPlaces{} })

	ic := NewItineraryController(itineraries)
	pc := NewPlanController(plans)
	dc := NewDestinationController(destinations)
	sc := NewSettingsController(settings)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.POST("/itineraries/generate", ic.GenerateHandler)
	r.POST("/itineraries/parse", ic.ParseHandler)
	r.POST("/itineraries/annotate", ic.AnnotateHandler)
	r.GET("/venues/link", ic.VenueLinkHandler)
	r.GET("/plans", pc.ListPlansHandler)
	r.GET("/plans/:slug", pc.GetPlanHandler)
	r.DELETE("/plans/:slug", pc.DeletePlanHandler)
	r.GET("/destinations/image", dc.ImageHandler)
	r.GET("/destinations/predictions", dc.PredictionsHandler)
	r.GET("/settings/:key", sc.GetSettingHandler)
	r.PUT("/settings/:key", sc.PutSettingHandler)
	r.DELETE("/settings/:key", sc.DeleteSettingHandler)
	return r
}

func perform(t *testing.T, r http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestGenerateAndManagePlans(t *testing.T) {
	r := newTestRouter(t)

	code, env := perform(t, r, http.MethodPost, "/itineraries/generate", map[string]any{
		"destinations": []string{"Paris"},
		"start_date":   "2024-06-01",
		"end_date":     "2024-06-02",
		"persona":      "monocle",
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, env.TraceID)

	var result services.ItineraryResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Structured)
	assert.Equal(t, "weekend-in-paris", result.Content.Slug)
	require.Len(t, result.Days, 2)
	assert.Equal(t, "2024-06-02", utils.FormatDate(result.Days[1].Date))

	code, env = perform(t, r, http.MethodGet, "/plans", nil)
	require.Equal(t, http.StatusOK, code)
	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Weekend in Paris", summaries[0]["title"])

	code, _ = perform(t, r, http.MethodGet, "/plans/weekend-in-paris", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = perform(t, r, http.MethodDelete, "/plans/weekend-in-paris", nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = perform(t, r, http.MethodGet, "/plans/weekend-in-paris", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", env.Status)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	r := newTestRouter(t)

	code, _ := perform(t, r, http.MethodPost, "/itineraries/generate", map[string]any{"destinations": []string{}})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = perform(t, r, http.MethodPost, "/itineraries/generate", map[string]any{
		"destinations": []string{"Paris"},
		"start_date":   "next tuesday",
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestParseHandler(t *testing.T) {
	r := newTestRouter(t)

	code, env := perform(t, r, http.MethodPost, "/itineraries/parse", map[string]any{
		"content":    "## Day 1\n9:00 AM - Breakfast at Café de Flore\n2:00 PM - Visit the Louvre Museum",
		"start_date": "2024-06-01",
	})
	require.Equal(t, http.StatusOK, code)
	var parsed services.ParsedItinerary
	require.NoError(t, json.Unmarshal(env.Data, &parsed))
	assert.True(t, parsed.Structured)
	require.Len(t, parsed.Days, 1)
	assert.Len(t, parsed.Days[0].Activities, 2)

	code, env = perform(t, r, http.MethodPost, "/itineraries/parse", map[string]any{"content": "just **wander** around"})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &parsed))
	assert.False(t, parsed.Structured)
	assert.Equal(t, "just wander around", parsed.Text)

	code, _ = perform(t, r, http.MethodPost, "/itineraries/parse", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAnnotateHandler(t *testing.T) {
	r := newTestRouter(t)

	code, env := perform(t, r, http.MethodPost, "/itineraries/annotate", map[string]any{"text": "Dinner at Le Cinq"})
	require.Equal(t, http.StatusOK, code)
	var resp struct {
		Spans []struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"spans"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Spans)
	assert.Equal(t, "link", resp.Spans[0].Kind)
}

func TestVenueLinkHandler(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path     string
		wantCode int
		wantURL  string
	}{
		{path: "/venues/link?name=Hilton+Paris+Opera", wantCode: http.StatusOK, wantURL: "https://www.hilton.com"},
		{path: "/venues/link?name=Le+Cinq&kind=maps", wantCode: http.StatusOK, wantURL: "https://www.google.com/maps/search/?api=1&query=Le+Cinq"},
		{path: "/venues/link?name=Le+Cinq&kind=web", wantCode: http.StatusOK, wantURL: "https://www.google.com/search?q=Le+Cinq"},
		{path: "/venues/link?name=Le+Cinq&kind=carrier-pigeon", wantCode: http.StatusBadRequest},
		{path: "/venues/link", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, env := perform(t, r, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.wantCode, code)
			if tt.wantURL == "" {
				return
			}
			var link map[string]string
			require.NoError(t, json.Unmarshal(env.Data, &link))
			assert.Equal(t, tt.wantURL, link["url"])
		})
	}
}

func TestDestinationHandlers(t *testing.T) {
	r := newTestRouter(t)

	code, env := perform(t, r, http.MethodGet, "/destinations/image?query=Paris", nil)
	require.Equal(t, http.StatusOK, code)
	var img map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &img))
	assert.Equal(t, "https://img.example/Paris.jpg", img["image_url"])

	code, _ = perform(t, r, http.MethodGet, "/destinations/image", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = perform(t, r, http.MethodGet, "/destinations/predictions?input=Par", nil)
	require.Equal(t, http.StatusOK, code)
	var preds []places.Prediction
	require.NoError(t, json.Unmarshal(env.Data, &preds))
	assert.Equal(t, "Paris, France", preds[0].Description)
}

func TestSettingsHandlers(t *testing.T) {
	r := newTestRouter(t)

	code, _ := perform(t, r, http.MethodGet, "/settings/places_api_key", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = perform(t, r, http.MethodGet, "/settings/favourite_color", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := perform(t, r, http.MethodPut, "/settings/gemini_api_key", map[string]string{"value": "abcd12345678"})
	require.Equal(t, http.StatusOK, code)
	var setting map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &setting))
	assert.Equal(t, "********5678", setting["value"])

	code, env = perform(t, r, http.MethodGet, "/settings/gemini_api_key", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &setting))
	assert.Equal(t, "********5678", setting["value"])

	code, _ = perform(t, r, http.MethodPut, "/settings/ai_provider", map[string]string{"value": "carrier-pigeon"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = perform(t, r, http.MethodDelete, "/settings/gemini_api_key", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = perform(t, r, http.MethodGet, "/settings/gemini_api_key", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
