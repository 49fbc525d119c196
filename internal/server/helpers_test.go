package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"spacedout/internal/config"
	"spacedout/internal/database"
	"spacedout/internal/geocode"
	"spacedout/internal/repository"
	"spacedout/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeGeocoder resolves everything to a fixed point, except the sentinel
// address "no such place".
type fakeGeocoder struct{}

func (fakeGeocoder) Geocode(_ context.Context, address string) (geocode.Result, error) {
	if address == "no such place" {
		return geocode.Result{}, geocode.ErrAddressNotFound
	}
	return geocode.Result{Latitude: 42.4534, Longitude: -76.4735}, nil
}

// newTestServer wires a Server against an in-memory database. The prometheus
// middleware is left nil so repeated setups in one test binary do not
// re-register collectors.
func newTestServer(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: database.NewGormLogger()})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	positionRepo := repository.NewPositionRepository(db)

	srv := &Server{
		config:       &config.Config{Port: "8080", Env: "test", GeocoderAgent: "spaced_out"},
		db:           db,
		userRepo:     userRepo,
		locationRepo: locationRepo,
		commentRepo:  commentRepo,
		positionRepo: positionRepo,
	}
	srv.authService = service.NewAuthService(userRepo)
	srv.userService = service.NewUserService(userRepo, locationRepo)
	srv.locationService = service.NewLocationService(locationRepo, fakeGeocoder{})
	srv.commentService = service.NewCommentService(commentRepo, userRepo, locationRepo)
	srv.positionService = service.NewPositionService(positionRepo, userRepo)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

// registerUser creates an account through the API and returns its payload
// (including session_token and update_token).
func registerUser(t *testing.T, app *fiber.App, name, email string) map[string]any {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "register failed: %v", body)
	return body
}

func sessionToken(t *testing.T, payload map[string]any) string {
	t.Helper()
	token, ok := payload["session_token"].(string)
	require.True(t, ok, "payload missing session_token: %v", payload)
	return token
}

func TestParseID(t *testing.T) {
	app, srv, _ := newTestServer(t)
	app.Get("/probe/:id", func(c *fiber.Ctx) error {
		id, err := srv.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	resp, _ := doJSON(t, app, http.MethodGet, "/probe/12", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/probe/zero", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid ID", body["error"])
}

func TestHealthEndpoints(t *testing.T) {
	app, _, _ := newTestServer(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "up", body["status"])

	resp, body = doJSON(t, app, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}
