package control_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/auth"
	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/activity"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/models"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler/control"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	require.NoError(t, db.AutoMigrate(&models.ActivityLog{}))

	app := fiber.New()
	cfg := &config.Config{Webserver: config.Webserver{URL: "http://localhost", Port: 8080}}

	h := control.Service{}
	h.Init(app, cfg, db, auth.RequestRole{})

	return app, db
}

func doActivate(t *testing.T, app *fiber.App, role string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, control.Path, strings.NewReader(`{"role":"`+role+`"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return resp.StatusCode, out
}

func TestActivate(t *testing.T) {
	for _, role := range []string{"ADM", "GT"} {
		t.Run(role, func(t *testing.T) {
			app, db := newTestApp(t)

			code, out := doActivate(t, app, role)
			require.Equal(t, fiber.StatusOK, code)
			assert.Equal(t, true, out["success"])
			assert.Equal(t, control.MsgActivated, out["message"])

			entries, err := activity.Recent(db)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, activity.ActionControlActivated, entries[0].Action)
			assert.Equal(t, role, entries[0].UserRole)
			assert.Equal(t, "success", entries[0].Details)
		})
	}
}

func TestActivateDenied(t *testing.T) {
	for _, role := range []string{"EV", "XX", ""} {
		t.Run("role="+role, func(t *testing.T) {
			app, db := newTestApp(t)

			code, out := doActivate(t, app, role)
			require.Equal(t, fiber.StatusForbidden, code)
			assert.Equal(t, control.MsgDenied, out["error"])
			assert.Equal(t, "UNAUTHORIZED", out["code"])

			entries, err := activity.Recent(db)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, activity.ActionControlActivationDenied, entries[0].Action)
			assert.Equal(t, role, entries[0].UserRole)
			assert.Equal(t, "attempted", entries[0].Details)
		})
	}
}
