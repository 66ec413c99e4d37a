package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursecraft/config"
	userController "coursecraft/controllers/userControllers"
	"coursecraft/database"
	"coursecraft/routers/userRoutes"
	"coursecraft/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}
	cred := services.NewCredentialService(cfg)
	users := services.NewUserService(db, cred)

	app := fiber.New()
	userRoutes.SetupUserRoutes(app, userController.NewUserController(users, cfg), cred)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw := []byte(nil)
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload := make(map[string]interface{})
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func registerBody() fiber.Map {
	return fiber.Map{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "Sup3rSecret!",
	}
}

func registerAndGetToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	code, payload := doJSON(t, app, http.MethodPost, "/api/users/register", "", registerBody())
	require.Equal(t, http.StatusCreated, code)
	return payload["token"].(string)
}

func TestRegisterOverHTTP(t *testing.T) {
	app := setupApp(t)

	code, payload := doJSON(t, app, http.MethodPost, "/api/users/register", "", registerBody())
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, payload["success"])
	assert.NotEmpty(t, payload["token"])

	user := payload["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])

	// The hash must never leak into a response
	_, exposed := user["password"]
	assert.False(t, exposed)
}

func TestRegisterValidationErrors(t *testing.T) {
	app := setupApp(t)

	code, payload := doJSON(t, app, http.MethodPost, "/api/users/register", "", fiber.Map{
		"username": "a!",
		"email":    "nope",
		"password": "weak",
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, payload["success"])

	errs := payload["errors"].([]interface{})
	require.Len(t, errs, 3)
	fields := []string{}
	for _, entry := range errs {
		fields = append(fields, entry.(map[string]interface{})["field"].(string))
	}
	assert.Equal(t, []string{"email", "password", "username"}, fields)
}

func TestRegisterDuplicateEmailOverHTTP(t *testing.T) {
	app := setupApp(t)
	registerAndGetToken(t, app)

	body := registerBody()
	body["username"] = "someone_else"
	code, payload := doJSON(t, app, http.MethodPost, "/api/users/register", "", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email is already registered", payload["message"])
}

func TestLoginFailureShapeIsUniform(t *testing.T) {
	app := setupApp(t)
	registerAndGetToken(t, app)

	code, wrongPassword := doJSON(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "WrongPass1!",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, unknownEmail := doJSON(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "Sup3rSecret!",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	assert.Equal(t, wrongPassword["message"], unknownEmail["message"])
}

func TestLoginSuccessOverHTTP(t *testing.T) {
	app := setupApp(t)
	registerAndGetToken(t, app)

	code, payload := doJSON(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "Sup3rSecret!",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, payload["success"])
	assert.NotEmpty(t, payload["token"])
}

func TestProfileLifecycle(t *testing.T) {
	app := setupApp(t)
	token := registerAndGetToken(t, app)

	// Profile requires a token
	code, _ := doJSON(t, app, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, payload := doJSON(t, app, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", payload["user"].(map[string]interface{})["username"])

	code, payload = doJSON(t, app, http.MethodPatch, "/api/users/profile", token, fiber.Map{
		"username": "alice_author",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice_author", payload["user"].(map[string]interface{})["username"])

	code, _ = doJSON(t, app, http.MethodPost, "/api/users/change-password", token, fiber.Map{
		"currentPassword": "Sup3rSecret!",
		"newPassword":     "An0therSecret!",
	})
	require.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "An0therSecret!",
	})
	require.Equal(t, http.StatusOK, code)

	code, payload = doJSON(t, app, http.MethodPost, "/api/users/refresh-token", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, payload["token"])

	code, _ = doJSON(t, app, http.MethodDelete, "/api/users/account", token, nil)
	require.Equal(t, http.StatusOK, code)

	// Token still verifies but the account is gone
	code, _ = doJSON(t, app, http.MethodGet, "/api/users/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	app := setupApp(t)
	token := registerAndGetToken(t, app)

	code, payload := doJSON(t, app, http.MethodPost, "/api/users/change-password", token, fiber.Map{
		"currentPassword": "NotTheRightOne1!",
		"newPassword":     "An0therSecret!",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Current password is incorrect", payload["message"])
}
