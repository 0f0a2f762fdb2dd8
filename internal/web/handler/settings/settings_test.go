package settings

import (
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/partshop/partshop/internal/config"
	"github.com/partshop/partshop/internal/db"
	"github.com/partshop/partshop/internal/db/dsn"
)

// setupTestApp serves the settings endpoint from a fresh sqlite file.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(dsn.SQLite(filepath.Join(t.TempDir(), "db.sqlite"))), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")

	app := fiber.New(fiber.Config{StrictRouting: true})

	service := New()
	require.NoError(t, service.Init(app, &config.Config{}, gdb))

	return app
}

func do(t *testing.T, app *fiber.App, method, body string) (int, string) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	resp, err := app.Test(httptest.NewRequest(method, Path, r), -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

func TestService_Get_Initial(t *testing.T) {
	app := setupTestApp(t)

	status, body := do(t, app, fiber.MethodGet, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{}`, body)
}

func TestService_Put(t *testing.T) {
	app := setupTestApp(t)

	payload := `{"aboutText":"Since 1998","contactNumbers":"+998 71 000","whatsappNumber":"+998 90 000"}`

	status, body := do(t, app, fiber.MethodPut, payload)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, payload, body)

	status, body = do(t, app, fiber.MethodGet, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, payload, body)
}

func TestService_Put_ReplacesWholeBlob(t *testing.T) {
	app := setupTestApp(t)

	status, _ := do(t, app, fiber.MethodPut, `{"a":"1"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, fiber.MethodPut, `{"b":"2"}`)
	require.Equal(t, fiber.StatusOK, status)

	_, body := do(t, app, fiber.MethodGet, "")
	assert.JSONEq(t, `{"b":"2"}`, body)
}

func TestService_Put_BigNumbers(t *testing.T) {
	app := setupTestApp(t)

	payload := `{"n":12345678901234567890,"f":0.10000000000000000001,"nested":{"m":98765432109876543210}}`

	status, body := do(t, app, fiber.MethodPut, payload)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "12345678901234567890")
	assert.Contains(t, body, "98765432109876543210")

	_, body = do(t, app, fiber.MethodGet, "")
	assert.Contains(t, body, `"n":12345678901234567890`)
	assert.Contains(t, body, `"f":0.10000000000000000001`)
	assert.Contains(t, body, `"m":98765432109876543210`)
}

func TestService_Put_Malformed(t *testing.T) {
	app := setupTestApp(t)

	_, _ = do(t, app, fiber.MethodPut, `{"a":"1"}`)

	status, body := do(t, app, fiber.MethodPut, `{"a":`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{}`, body)

	_, body = do(t, app, fiber.MethodGet, "")
	assert.JSONEq(t, `{}`, body)
}

func TestService_Init_Nil(t *testing.T) {
	service := &Service{}
	require.Error(t, service.Init(nil, nil, nil))
}
