package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftbox/backend/config"
	"giftbox/backend/models"
	"giftbox/backend/session"
	"giftbox/backend/utils"
)

var fixedNow = time.Date(2025, time.December, 24, 18, 0, 0, 0, time.UTC)

type testClient struct {
	t      *testing.T
	app    *fiber.App
	cookie *http.Cookie
}

func newTestClient(t *testing.T, variant models.Variant) (*testClient, *session.Registry) {
	t.Helper()
	return newTestClientWithLog(t, variant, io.Discard, false)
}

func newTestClientWithLog(t *testing.T, variant models.Variant, out io.Writer, colors bool) (*testClient, *session.Registry) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:   "testsecret",
		Variant:     variant,
		WrapWidth:   68,
		SessionTTL:  time.Hour,
		CORSOrigins: "*",
	}
	registry := session.NewRegistry(cfg.SessionTTL, nil)
	logger := log.New(out, "", 0)
	app := NewApp(cfg, registry, nil, func() time.Time { return fixedNow }, logger, colors)
	return &testClient{t: t, app: app}, registry
}

func (tc *testClient) do(req *http.Request) *http.Response {
	tc.t.Helper()
	if tc.cookie != nil {
		req.AddCookie(tc.cookie)
	}
	resp, err := tc.app.Test(req, -1)
	require.NoError(tc.t, err)
	for _, c := range resp.Cookies() {
		if c.Name == utils.SessionCookie {
			tc.cookie = c
		}
	}
	return resp
}

func (tc *testClient) postJSON(path string, body interface{}) *http.Response {
	data, err := json.Marshal(body)
	require.NoError(tc.t, err)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(data)))
	req.Header.Set("Content-Type", "application/json")
	return tc.do(req)
}

func (tc *testClient) postForm(path string, form url.Values) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return tc.do(req)
}

func (tc *testClient) get(path string) *http.Response {
	return tc.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSessionCookieIsIssuedOnce(t *testing.T) {
	tc, registry := newTestClient(t, models.VariantAnnual)

	tc.get("/api/habits")
	require.NotNil(t, tc.cookie)
	first := tc.cookie.Value

	resp := tc.get("/api/habits")
	assert.Empty(t, resp.Cookies())
	assert.Equal(t, first, tc.cookie.Value)
	assert.Equal(t, 1, registry.Len())
}

func TestSessionsDoNotShareRecords(t *testing.T) {
	alice, registry := newTestClient(t, models.VariantAnnual)
	alice.postJSON("/api/journal", map[string]string{"note": "solo mío"})

	bob := &testClient{t: t, app: alice.app}
	result := decode(t, bob.get("/api/journal"))

	assert.Equal(t, float64(0), result["total"])
	assert.Equal(t, 2, registry.Len())
}

func TestAddHabitFormDefaultsDate(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)

	resp := tc.postForm("/api/habits", url.Values{"label": {"caminar 20 min"}, "done": {"on"}})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "2025-12-24", data["date"])
	assert.Equal(t, true, data["done"])
}

func TestAddHabitRejectsBadDate(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)

	resp := tc.postJSON("/api/habits", map[string]interface{}{"label": "leer", "date": "24/12/2025"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAddGoalClampsProgressAndDefaultsTarget(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)

	resp := tc.postJSON("/api/goals", map[string]interface{}{"label": "leer 12 libros", "category": "Habilidades", "progress": 140})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(100), data["progress"])
	assert.Equal(t, "Skills", data["category"])
	assert.Equal(t, "2026-03-24", data["target_date"])
}

func TestAddGoalRejectsUnknownCategory(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)

	resp := tc.postJSON("/api/goals", map[string]interface{}{"label": "viajar", "category": "Viajes"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	details := decode(t, resp)["details"].(map[string]interface{})
	assert.Contains(t, details, "category")
}

func TestListPagination(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)
	for i := 0; i < 5; i++ {
		tc.postJSON("/api/journal", map[string]string{"note": "nota"})
	}

	result := decode(t, tc.get("/api/journal?page=2&page_size=2"))

	assert.Equal(t, float64(5), result["total"])
	assert.Len(t, result["data"], 2)
}

func TestSummaryReflectsRecords(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)
	tc.postJSON("/api/habits", map[string]interface{}{"label": "a", "done": true})
	tc.postJSON("/api/habits", map[string]interface{}{"label": "b", "done": false})
	tc.postJSON("/api/goals", map[string]interface{}{"label": "g1", "category": "Health", "progress": 20})
	tc.postJSON("/api/goals", map[string]interface{}{"label": "g2", "category": "Health", "progress": 40})
	tc.postJSON("/api/goals", map[string]interface{}{"label": "g3", "category": "Work", "progress": 90})

	resp := tc.get("/api/summary")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, float64(50), summary["completion_ratio"])
	assert.Equal(t, float64(50), summary["average_progress"])
	assert.Equal(t, "Health", summary["top_category"])
	assert.Equal(t, true, data["export"])
	doc := data["document"].(map[string]interface{})
	assert.Contains(t, doc["markdown"], "Categoría más trabajada: Salud")
}

func TestSummaryImageDownload(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)
	tc.postJSON("/api/journal", map[string]string{"note": "gracias por todo"})

	resp := tc.get("/api/summary/image")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "resumen_anual.png")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "\x89PNG\r\n\x1a\n"))
}

func TestSummaryImageGoalsFilename(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantGoals)

	resp := tc.get("/api/summary/image")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "resumen_metas.png")
}

func TestSummaryImageDisabledInPersonalVariant(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantPersonal)

	resp := tc.get("/api/summary/image")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGiftAndSummaryPage(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)

	before := decode(t, tc.get("/api/gift"))["data"].(map[string]interface{})
	assert.Equal(t, false, before["opened"])

	resp := tc.do(httptest.NewRequest(http.MethodPost, "/api/gift/open", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := tc.get("/")
	require.Equal(t, fiber.StatusOK, page.StatusCode)
	assert.Contains(t, page.Header.Get("Content-Type"), "text/html")
	html, err := io.ReadAll(page.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), "¡Feliz Navidad 2025!")
	assert.Contains(t, string(html), "<h2>Hábitos</h2>")
	assert.Contains(t, string(html), "resumen_anual.png")
}

func TestBearerTokenResolvesSession(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)
	tc.postJSON("/api/journal", map[string]string{"note": "vía cookie"})

	req := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
	req.Header.Set("Authorization", "Bearer "+tc.cookie.Value)
	resp, err := tc.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, float64(1), decode(t, resp)["total"])
}

func TestListHugePageIsEmpty(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)
	tc.postJSON("/api/habits", map[string]interface{}{"label": "leer", "done": true})

	for _, path := range []string{"/api/habits", "/api/journal", "/api/goals"} {
		resp := tc.get(path + "?page=9223372036854775807&page_size=50")
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)

		result := decode(t, resp)
		assert.Empty(t, result["data"], path)
	}
}

func TestPanicBecomesServerError(t *testing.T) {
	tc, _ := newTestClient(t, models.VariantAnnual)
	tc.app.Get("/panic", func(c *fiber.Ctx) error {
		panic("draw failed")
	})

	resp := tc.get("/panic")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	resp = tc.get("/api/habits")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequestLogColors(t *testing.T) {
	var out bytes.Buffer
	tc, _ := newTestClientWithLog(t, models.VariantAnnual, &out, true)

	tc.get("/api/habits")

	assert.Contains(t, out.String(), utils.MethodColor(http.MethodGet))
	assert.Contains(t, out.String(), utils.StatusColor(fiber.StatusOK))
}
