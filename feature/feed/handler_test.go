package feed

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"level-list/feature/feed/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *memorySource) {
	src := newMemorySource()
	src.set(1, models.Section{
		Header: &models.Row{ID: 10, Title: "News"},
		Rows:   []models.Row{{ID: 1, Title: "a"}},
	})

	app := fiber.New()
	NewHandler(newTestService(t, src)).RegisterRoutes(app)
	return app, src
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}

func TestHandleRefresh(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doRequest(t, app, "POST", "/feed/1/refresh")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "both", body["mode"])
	assert.Equal(t, float64(2), body["size"])

	status, body = doRequest(t, app, "GET", "/feed/")
	assert.Equal(t, fiber.StatusOK, status)
	items := body["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "News", items[0].(map[string]any)["title"])
	assert.Equal(t, float64(10), items[1].(map[string]any)["layout"])
}

func TestHandleShimmer(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doRequest(t, app, "POST", "/feed/2/shimmer?count=4&mode=data")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(4), body["size"])
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(4), summary["inserted"])
}

func TestHandler_Errors(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"NonNumericType", "POST", "/feed/abc/refresh", fiber.StatusBadRequest},
		{"InvalidMode", "POST", "/feed/1/refresh?mode=all", fiber.StatusBadRequest},
		{"UnknownSection", "POST", "/feed/9/refresh", fiber.StatusNotFound},
		{"InvalidCount", "POST", "/feed/1/shimmer?count=0", fiber.StatusBadRequest},
		{"NonNumericCount", "POST", "/feed/1/shimmer?count=x", fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, tt.method, tt.target)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}
