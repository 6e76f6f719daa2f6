package station

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"radioreg/internal/database"
	"radioreg/internal/middleware"
	"radioreg/internal/pkg/files"
	jwtsvc "radioreg/internal/pkg/jwt"
	"radioreg/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stationResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	repo := repository.NewStationRepository(db)
	service := NewService(repo, files.NewStore(t.TempDir()))
	handler := NewHandler(service, NewImporter(repo))

	jwtService := jwtsvc.New("test-secret", time.Hour)

	router := gin.New()
	api := router.Group("/api/v1", middleware.Auth(jwtService))
	handler.RegisterRoutes(api)

	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *jwtsvc.Service, role, label string) string {
	t.Helper()
	token, err := jwtService.GenerateToken(role, label)
	require.NoError(t, err)
	return token
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHandler_CreateRequiresAdmin(t *testing.T) {
	router, jwtService := setupRouter(t)
	admin := tokenFor(t, jwtService, "admin", "Администратор")
	viewer := tokenFor(t, jwtService, "viewer", "Наблюдатель")

	body := UpsertStationRequest{Name: "БС Варзоб"}

	resp := performRequest(router, http.MethodPost, "/api/v1/stations", body, viewer)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(router, http.MethodPost, "/api/v1/stations", body, admin)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created stationResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "БС Варзоб", created.Data.Name)
}

func TestHandler_CreateDuplicateName(t *testing.T) {
	router, jwtService := setupRouter(t)
	admin := tokenFor(t, jwtService, "admin", "Администратор")

	body := UpsertStationRequest{Name: "БС Варзоб"}
	resp := performRequest(router, http.MethodPost, "/api/v1/stations", body, admin)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(router, http.MethodPost, "/api/v1/stations", body, admin)
	assert.Equal(t, http.StatusConflict, resp.Code)

	var e errorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &e))
	assert.Equal(t, "DUPLICATE_KEY", e.Error.Code)
}

func TestHandler_ViewerMayPatchNotes(t *testing.T) {
	router, jwtService := setupRouter(t)
	admin := tokenFor(t, jwtService, "admin", "Администратор")
	viewer := tokenFor(t, jwtService, "viewer", "Наблюдатель")

	resp := performRequest(router, http.MethodPost, "/api/v1/stations",
		UpsertStationRequest{Name: "БС Варзоб"}, admin)
	require.Equal(t, http.StatusCreated, resp.Code)
	var created stationResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/v1/stations/%d/notes", created.Data.ID)
	resp = performRequest(router, http.MethodPatch, path,
		UpdateNotesRequest{Notes: "заменить фидер"}, viewer)
	assert.Equal(t, http.StatusOK, resp.Code)

	// every other station mutation stays closed to the viewer
	resp = performRequest(router, http.MethodDelete,
		fmt.Sprintf("/api/v1/stations/%d", created.Data.ID), nil, viewer)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHandler_MissingToken(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/v1/stations", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHandler_ValidationDetails(t *testing.T) {
	router, jwtService := setupRouter(t)
	admin := tokenFor(t, jwtService, "admin", "Администратор")

	resp := performRequest(router, http.MethodPost, "/api/v1/stations",
		UpsertStationRequest{Name: ""}, admin)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	var e errorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &e))
	assert.Equal(t, "VALIDATION_ERROR", e.Error.Code)
}
