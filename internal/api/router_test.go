package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"naturapi/internal/api/controllers"
	"naturapi/internal/config"
	"naturapi/internal/infra"
	"naturapi/internal/models/db_models"
	"naturapi/internal/repositories"
	"naturapi/internal/services"
	"naturapi/internal/storage/local"
	"naturapi/pkg/logger"
	"naturapi/pkg/metrics"
	"naturapi/pkg/utils"
)

type testServer struct {
	router   *gin.Engine
	db       *gorm.DB
	imageDir string
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, infra.Migrate(db))

	cfg := config.New()
	cfg.LocalImageDir = t.TempDir()

	log := logger.NewNop()
	m := metrics.NewManager()

	imageStorage, err := local.New(cfg.LocalImageDir, cfg.PublicBaseURL, log)
	require.NoError(t, err)

	poiRepo := repositories.NewPOIRepository()
	ctrl := Controllers{
		POIs:   controllers.NewPOIsController(services.NewPOIService(db, poiRepo, log, m)),
		Flora:  controllers.NewFloraController(services.NewFloraService(db, repositories.NewFloraRepository(), poiRepo, log, m)),
		Fauna:  controllers.NewFaunaController(services.NewFaunaService(db, repositories.NewFaunaRepository(), poiRepo, log, m)),
		Images: controllers.NewImageController(services.NewImageService(imageStorage, log, m)),
		Health: controllers.NewHealthController(),
	}

	return testServer{
		router:   NewRouter(cfg, log, m, ctrl),
		db:       db,
		imageDir: cfg.LocalImageDir,
	}
}

func (s testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

var bosqueDePinos = map[string]interface{}{
	"nombre":      "Bosque de Pinos",
	"descripcion": "Bosque templado de coníferas",
	"foto_url":    "http://ejemplo.com/bosque.jpg",
	"tipo":        "Natural",
	"longitud":    "-99.1234",
	"latitud":     "19.4321",
}

func TestHealthAndRoot(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/healthCheck", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"All works!"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	rec = s.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to the Marketplace API"}`, rec.Body.String())
}

func TestPOIAndFaunaScenario(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/poi/createPois", bosqueDePinos)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	poi := decode[map[string]interface{}](t, rec)
	require.Contains(t, poi, "id")
	for k, v := range bosqueDePinos {
		assert.Equal(t, v, poi[k], k)
	}
	poiID := int64(poi["id"].(float64))

	fauna := map[string]interface{}{
		"nombre_cientifico": "Odocoileus virginianus",
		"nombre_comun":      "Venado cola blanca",
		"especie":           "O. virginianus",
		"habitat":           "Bosque templado",
		"foto_url":          "http://ejemplo.com/venado.jpg",
		"poi_id":            poiID,
	}
	rec = s.do(t, http.MethodPost, "/fauna/createFauna", fauna)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[map[string]interface{}](t, rec)
	faunaID := int64(created["id"].(float64))

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/fauna/getFaunaById/%d", faunaID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]interface{}](t, rec)
	for k, v := range fauna {
		if k == "poi_id" {
			assert.Equal(t, float64(poiID), got[k])
			continue
		}
		assert.Equal(t, v, got[k], k)
	}

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/fauna/deleteFaunaById/%d", faunaID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Fauna deleted"}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/fauna/getFaunaById/%d", faunaID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Fauna not found", decode[utils.APIResponse](t, rec).Message)
}

func TestCreateFloraWithUnknownPOI(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/flora/flora/", map[string]interface{}{
		"nombre_cientifico": "Dahlia coccinea",
		"nombre_comun":      "Dalia",
		"familia":           "Asteraceae",
		"foto_url":          "http://ejemplo.com/dalia.jpg",
		"poi_id":            999999,
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[utils.APIResponse](t, rec)
	assert.Equal(t, "POI with id 999999 not found", body.Message)

	var count int64
	require.NoError(t, s.db.Model(&db_models.Flora{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFloraLifecycle(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/poi/createPois", bosqueDePinos)
	require.Equal(t, http.StatusOK, rec.Code)
	poiID := int64(decode[map[string]interface{}](t, rec)["id"].(float64))

	rec = s.do(t, http.MethodPost, "/flora/flora/", map[string]interface{}{
		"nombre_cientifico": "Pinus hartwegii",
		"nombre_comun":      "Pino de las alturas",
		"familia":           "Pinaceae",
		"foto_url":          "http://ejemplo.com/pino.jpg",
		"poi_id":            poiID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	floraID := int64(decode[map[string]interface{}](t, rec)["id"].(float64))

	rec = s.do(t, http.MethodGet, "/flora/getAllFlora", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/flora/flora/%d", floraID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Flora deleted"}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/flora/getFloraById/%d", floraID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Flora not found", decode[utils.APIResponse](t, rec).Message)
}

func TestCreatePOIWithMissingFields(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/poi/createPois", map[string]interface{}{"nombre": "POI Incompleto"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[utils.APIResponse](t, rec)
	fields := make([]string, 0, len(body.Details))
	for _, d := range body.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"descripcion", "foto_url", "tipo", "longitud", "latitud"}, fields)
}

func TestCreatePOIWithWrongTypes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/poi/createPois", `{"nombre":"x","descripcion":"d","foto_url":"f","tipo":"t","longitud":-99.12,"latitud":"19.4"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[utils.APIResponse](t, rec)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "longitud", body.Details[0].Field)
}

func TestMalformedBodiesAndParams(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"broken json", http.MethodPost, "/poi/createPois", `{"nombre":`},
		{"string poi_id", http.MethodPost, "/fauna/createFauna", `{"nombre_cientifico":"a","nombre_comun":"b","especie":"c","habitat":"d","foto_url":"e","poi_id":"uno"}`},
		{"non numeric id", http.MethodGet, "/poi/getPoiById/abc", nil},
		{"negative skip", http.MethodGet, "/poi/getAllPois?skip=-1", nil},
		{"non numeric limit", http.MethodGet, "/fauna/getAllFauna?limit=diez", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		})
	}
}

func TestNonNumericPathIDReportsIDField(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/poi/getPoiById/abc", "/flora/getFloraById/1.5", "/fauna/deleteFaunaById/x"} {
		method := http.MethodGet
		if strings.Contains(path, "delete") {
			method = http.MethodDelete
		}
		rec := s.do(t, method, path, nil)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, path)
		body := decode[utils.APIResponse](t, rec)
		assert.Equal(t, []utils.FieldError{{Field: "id", Message: "must be an integer"}}, body.Details, path)
	}
}

func TestListPoisPagination(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 12; i++ {
		rec := s.do(t, http.MethodPost, "/poi/createPois", bosqueDePinos)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := s.do(t, http.MethodGet, "/poi/getAllPois", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 10)

	rec = s.do(t, http.MethodGet, "/poi/getAllPois?skip=10&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 2)

	rec = s.do(t, http.MethodGet, "/poi/getAllPois?skip=50", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDeleteMissingPOIStillSucceeds(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodDelete, "/poi/deletePoisById/4040", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"POI deleted"}`, rec.Body.String())
}

func multipartUpload(t *testing.T, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/images/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestImageUpload(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, multipartUpload(t, "ajolote.png", "image/png", []byte("\x89PNG fake")))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "success", body["status"])
	require.True(t, strings.HasPrefix(body["url"], "http://localhost:8000/images/files/"), body["url"])
	assert.True(t, strings.HasSuffix(body["url"], ".png"))

	name := strings.TrimPrefix(body["url"], "http://localhost:8000/images/files/")
	stored, err := os.ReadFile(filepath.Join(s.imageDir, name))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG fake", string(stored))

	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/files/"+name, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadedImageURLServesAnImage(t *testing.T) {
	s := newTestServer(t)

	for _, filename := range []string{"evil.html", "foto.png?x=1", "foto.png#frag"} {
		t.Run(filename, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, multipartUpload(t, filename, "image/png", []byte("<script>alert(1)</script>")))
			require.Equal(t, http.StatusOK, rec.Code)
			body := decode[map[string]string](t, rec)
			require.Equal(t, "success", body["status"], body["message"])

			path := strings.TrimPrefix(body["url"], "http://localhost:8000")
			require.True(t, strings.HasPrefix(path, "/images/files/"), body["url"])
			assert.True(t, strings.HasSuffix(path, ".png"), path)

			rec = httptest.NewRecorder()
			s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "image/"), rec.Header().Get("Content-Type"))
		})
	}
}

func TestImageUploadRejectsNonImageInBody(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, multipartUpload(t, "notas.txt", "text/plain", []byte("hola")))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, utils.ErrInvalidImageType.Error(), body["message"])
}

func TestImageUploadWithoutFile(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/images/upload", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/poi/createPois", bosqueDePinos)

	rec := s.do(t, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `naturapi_store_entities_created_total{entity="poi"} 1`)
}
