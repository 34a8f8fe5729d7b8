package catalog

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *serviceFixture) {
	f := newServiceFixture(t)
	app := fiber.New()
	NewHandler(f.service).RegisterRoutes(app)
	return app, f
}

func decodeBody(t *testing.T, body io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}

func TestHandleListItems(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/items", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var items []reconcile.CatalogItem
	decodeBody(t, resp.Body, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/items?status=archived", nil))
	require.NoError(t, err)
	decodeBody(t, resp.Body, &items)
	assert.Empty(t, items)
}

func TestHandleStats(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var stats map[string]int64
	decodeBody(t, resp.Body, &stats)
	assert.Equal(t, int64(2), stats["active"])
}

func TestHandleSyncAndApply(t *testing.T) {
	app, f := setupTestApp(t)
	f.client.On("PutObject", mock.Anything, "catalog", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minioUploadInfo(), nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/catalog/sync", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var plan reconcile.ReconcilePlan
	decodeBody(t, resp.Body, &plan)
	require.NotEmpty(t, plan.ID)
	assert.Equal(t, 1, plan.Summary.Created)

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/sync/"+plan.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/catalog/sync/"+plan.ID+"/apply?dry_run=true", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var result ApplyResult
	decodeBody(t, resp.Body, &result)
	assert.True(t, result.DryRun)

	resp, err = app.Test(httptest.NewRequest("POST", "/catalog/sync/"+plan.ID+"/apply", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	decodeBody(t, resp.Body, &result)
	assert.False(t, result.DryRun)
	assert.Equal(t, 3, result.Written)

	// Applied plans are gone.
	resp, err = app.Test(httptest.NewRequest("POST", "/catalog/sync/"+plan.ID+"/apply", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSync_FetchFailure(t *testing.T) {
	app, f := setupTestApp(t)
	f.feed.err = assert.AnError

	resp, err := app.Test(httptest.NewRequest("POST", "/catalog/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	assert.Contains(t, body["source"], "records:")
}

func TestHandleGetPlan_Errors(t *testing.T) {
	app, f := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/sync/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	f.service.plans = reconcile.NewPlanStore(time.Nanosecond)
	f.service.plans.Put(&reconcile.ReconcilePlan{ID: "old"})
	time.Sleep(time.Millisecond)

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/sync/old", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusGone, resp.StatusCode)
}
