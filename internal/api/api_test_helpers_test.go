package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/venturehub/internal/db"
	"github.com/terraincognita07/venturehub/internal/i18n"
	"github.com/terraincognita07/venturehub/internal/store"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "venturehub.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	i18nManager, err := i18n.NewManager("en")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(store.New(db.NewCollectionBackend(database)), testSecretKey, i18nManager, zerolog.Nop(), false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	return app, handler
}

type testRequest struct {
	method   string
	path     string
	body     any
	cookie   string
	language string
}

func doRequest(t *testing.T, app *fiber.App, request testRequest) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if request.body != nil {
		encoded, err := json.Marshal(request.body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	httpRequest := httptest.NewRequest(request.method, request.path, body)
	if request.body != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	if request.cookie != "" {
		httpRequest.Header.Set("Cookie", request.cookie)
	}
	if request.language != "" {
		httpRequest.Header.Set("Accept-Language", request.language)
	}

	response, err := app.Test(httpRequest, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.method, request.path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", request.method, request.path, err)
	}
	payload := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("%s %s decode body failed: %v (%s)", request.method, request.path, err, raw)
		}
	}
	return response, payload
}

func expectStatus(t *testing.T, response *http.Response, payload map[string]any, want int) {
	t.Helper()
	if response.StatusCode != want {
		t.Fatalf("%s %s expected status %d, got %d (%v)", response.Request.Method, response.Request.URL.Path, want, response.StatusCode, payload)
	}
}

func testResponseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func authCookieFrom(t *testing.T, response *http.Response) string {
	t.Helper()
	cookie := testResponseCookie(response.Cookies(), authCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("expected %s cookie in response", authCookieName)
	}
	return authCookieName + "=" + cookie.Value
}

func signUpUser(t *testing.T, app *fiber.App, role string, name string, email string) (string, string) {
	t.Helper()
	response, payload := doRequest(t, app, testRequest{
		method: http.MethodPost,
		path:   "/api/auth/signup",
		body: map[string]string{
			"role":            role,
			"name":            name,
			"email":           email,
			"password":        "secret1",
			"confirmPassword": "secret1",
		},
	})
	expectStatus(t, response, payload, fiber.StatusCreated)

	user, _ := payload["user"].(map[string]any)
	id, _ := user["id"].(string)
	if id == "" {
		t.Fatalf("expected user id in signup response, got %v", payload)
	}
	return authCookieFrom(t, response), id
}
