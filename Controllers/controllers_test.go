package Controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Atlas/FiberConfig"
	"Atlas/Models"
)

// setupTestApp builds a fiber app with all routes wired against a fresh
// SQLite database file, one per test.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	Models.Migrate(db)

	app := fiber.New()
	FiberConfig.SetupRoutes(app, db)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createOrganisation(t *testing.T, app *fiber.App, name string) Models.Organisation {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/api/organisations/create", fiber.Map{"name": name})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var organisation Models.Organisation
	decodeBody(t, resp, &organisation)
	require.NotZero(t, organisation.ID)
	return organisation
}
