// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/annuaire-ia/backend/internal/config"
	"github.com/annuaire-ia/backend/internal/models"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Every pooled connection of an in-memory sqlite database is its own
	// database; pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.TargetAudience{},
		&models.Tool{},
		&models.Feature{},
		&models.UseCase{},
		&models.Review{},
		&models.ToolTag{},
		&models.ToolAudience{},
		&models.ToolSubmission{},
		&models.SiteSetting{},
		&models.Contact{},
	))

	require.NoError(t, db.Create(&models.Category{
		Name:      "Assistants IA",
		Slug:      "assistants-ia",
		IsVisible: true,
	}).Error)

	cfg := &config.Config{
		RateLimit: config.RateLimitConfig{
			GeneralPerSecond: 1000,
			GeneralBurst:     1000,
			SubmitPerMinute:  60000,
			SubmitBurst:      1000,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	return Initialize(db, cfg), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createToolViaAPI(t *testing.T, r *gin.Engine, slug string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/tools", gin.H{
		"name":             "Outil " + slug,
		"slug":             slug,
		"shortDescription": "Une description courte",
		"categoryId":       1,
		"website":          "https://example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestToolLifecycleOverHTTP(t *testing.T) {
	r, _ := newTestServer(t)

	createToolViaAPI(t, r, "mon-outil")

	w := doJSON(t, r, http.MethodGet, "/tools/mon-outil", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Outil mon-outil", detail["name"])

	w = doJSON(t, r, http.MethodGet, "/tools/inconnu", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/tools/mon-outil", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/tools/mon-outil", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateToolConflict(t *testing.T) {
	r, _ := newTestServer(t)

	createToolViaAPI(t, r, "doublon")

	w := doJSON(t, r, http.MethodPost, "/tools", gin.H{
		"name":             "Doublon",
		"slug":             "doublon",
		"shortDescription": "Encore",
		"categoryId":       1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListToolsRejectsOversizedLimit(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/tools?limit=150", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestReviewContentFilterOverHTTP(t *testing.T) {
	r, _ := newTestServer(t)

	createToolViaAPI(t, r, "note")

	w := doJSON(t, r, http.MethodPost, "/tools/note/reviews", gin.H{
		"userName": "Alice",
		"rating":   5,
		"comment":  "check http://x.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/tools/note/reviews", gin.H{
		"userName": "Alice",
		"rating":   5,
		"comment":  "Great tool, 10/10",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Unmoderated reviews stay off the public listing.
	w = doJSON(t, r, http.MethodGet, "/tools/note/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSubmissionModerationFlow(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/submit", gin.H{
		"name":           "Super Outil IA",
		"website":        "https://super-outil.fr",
		"description":    "Un outil remarquable",
		"categoryId":     1,
		"tags":           []string{"Audio", "Gratuit"},
		"submitterName":  "Jean",
		"submitterEmail": "jean@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var submission models.ToolSubmission
	require.NoError(t, db.Where("name = ?", "Super Outil IA").First(&submission).Error)
	assert.Equal(t, models.SubmissionStatusPending, submission.Status)

	w = doJSON(t, r, http.MethodGet, "/admin/submissions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Super Outil IA")

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/admin/submissions/%d/approve", submission.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/tools/super-outil-ia", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Approving twice is a 404: the submission left the pending queue.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/admin/submissions/%d/approve", submission.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Only POST /tools answers 201; the other create endpoints echo the row
// with a plain 200.
func TestCreateEndpointStatusCodes(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/tools", gin.H{
		"name":             "Outil",
		"slug":             "outil",
		"shortDescription": "desc",
		"categoryId":       1,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/categories", gin.H{
		"name": "Nouvelle",
		"slug": "nouvelle",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/tags", gin.H{"name": "Nouveau"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/submit", gin.H{
		"name":           "Soumission",
		"website":        "https://exemple.fr",
		"description":    "desc",
		"categoryId":     1,
		"submitterName":  "Jean",
		"submitterEmail": "jean@example.com",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestContactFormOverHTTP(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/contact", gin.H{
		"name":    "Jean",
		"email":   "jean@example.com",
		"subject": "Question",
		"message": "Bonjour, comment soumettre un outil ?",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	w = doJSON(t, r, http.MethodPost, "/contact", gin.H{
		"name":  "Jean",
		"email": "jean@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminSettingsOverHTTP(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/admin/settings", gin.H{"site_name": "Annuaire IA"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var settings map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "Annuaire IA", settings["site_name"])
}

func TestInvalidSubmissionID(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/admin/submissions/abc/approve", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
