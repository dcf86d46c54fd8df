package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brushline/estimator-backend/internal/handlers"
	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/middleware"
	"github.com/brushline/estimator-backend/internal/repos"
	"github.com/brushline/estimator-backend/internal/services"
	"github.com/brushline/estimator-backend/internal/types"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestServer(t *testing.T, adminPassword string) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := gdb.AutoMigrate(
		&types.ProjectType{},
		&types.Surface{},
		&types.Scenario{},
		&types.Output{},
		&types.Material{},
		&types.Estimate{},
		&types.EstimateItem{},
		&types.EstimateItemMaterial{},
	); err != nil {
		t.Fatalf("automigrate test database: %v", err)
	}

	log := logger.NewNop()
	projectTypeRepo := repos.NewProjectTypeRepo(gdb, log)
	surfaceRepo := repos.NewSurfaceRepo(gdb, log)
	scenarioRepo := repos.NewScenarioRepo(gdb, log)
	outputRepo := repos.NewOutputRepo(gdb, log)
	materialRepo := repos.NewMaterialRepo(gdb, log)
	estimateRepo := repos.NewEstimateRepo(gdb, log)
	itemRepo := repos.NewEstimateItemRepo(gdb, log)
	itemMatRepo := repos.NewEstimateItemMaterialRepo(gdb, log)

	catalog := services.NewCatalogService(gdb, log, projectTypeRepo, surfaceRepo, scenarioRepo, materialRepo)
	outputs := services.NewOutputService(gdb, log, outputRepo)
	estimates := services.NewEstimateService(
		gdb, log,
		estimateRepo, itemRepo, itemMatRepo,
		projectTypeRepo, surfaceRepo, scenarioRepo, outputRepo, materialRepo,
	)

	return NewRouter(RouterConfig{
		HealthHandler:      handlers.NewHealthHandler(),
		ProjectTypeHandler: handlers.NewProjectTypeHandler(log, catalog),
		SurfaceHandler:     handlers.NewSurfaceHandler(log, catalog),
		ScenarioHandler:    handlers.NewScenarioHandler(log, catalog),
		OutputHandler:      handlers.NewOutputHandler(log, outputs),
		MaterialHandler:    handlers.NewMaterialHandler(log, catalog),
		EstimateHandler:    handlers.NewEstimateHandler(log, estimates),
		AdminGate:          middleware.NewAdminGate(log, adminPassword),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func idFromEnvelope(t *testing.T, w *httptest.ResponseRecorder, key string) string {
	t.Helper()
	body := decodeBody(t, w)
	raw, ok := body[key]
	if !ok {
		t.Fatalf("response missing %q envelope: %s", key, w.Body.String())
	}
	var entity struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &entity); err != nil {
		t.Fatalf("decode %q: %v", key, err)
	}
	if entity.ID == "" {
		t.Fatalf("%q has no id: %s", key, w.Body.String())
	}
	return entity.ID
}

func TestHealthcheck(t *testing.T) {
	r := newTestServer(t, "")
	w := doJSON(t, r, http.MethodGet, "/healthcheck", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", w.Code, http.StatusOK)
	}
}

func TestProjectTypeRoutes(t *testing.T) {
	r := newTestServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/project-types", gin.H{
		"name":        "InteriorRepaint",
		"displayName": "Interior Repaint",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("create: got=%d body=%s", w.Code, w.Body.String())
	}
	id := idFromEnvelope(t, w, "projectType")

	w = doJSON(t, r, http.MethodPost, "/api/project-types", gin.H{"name": "Bare"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("create without displayName: got=%d want=400", w.Code)
	}
	var errBody handlers.ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if !strings.Contains(errBody.Error, "displayName") {
		t.Fatalf("error does not name the missing field: %q", errBody.Error)
	}

	w = doJSON(t, r, http.MethodGet, "/api/project-types", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: got=%d", w.Code)
	}
	var listBody struct {
		ProjectTypes []types.ProjectType `json:"projectTypes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listBody); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listBody.ProjectTypes) != 1 || listBody.ProjectTypes[0].ID.String() != id {
		t.Fatalf("unexpected listing: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/project-types?id="+uuid.NewString(), nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete unknown: got=%d want=404", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/project-types?id="+id, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got=%d body=%s", w.Code, w.Body.String())
	}
	var delBody struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &delBody); err != nil || !delBody.Success {
		t.Fatalf("unexpected delete body: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/project-types", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete without id: got=%d want=400", w.Code)
	}
}

func TestAdminGate(t *testing.T) {
	r := newTestServer(t, "hunter2")

	body := gin.H{"name": "InteriorRepaint", "displayName": "Interior Repaint"}

	w := doJSON(t, r, http.MethodPost, "/api/project-types", body, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no password: got=%d want=401", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/project-types", body, map[string]string{"X-Admin-Password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: got=%d want=401", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/project-types", body, map[string]string{"X-Admin-Password": "hunter2"})
	if w.Code != http.StatusOK {
		t.Fatalf("right password: got=%d body=%s", w.Code, w.Body.String())
	}

	// Reads stay open.
	w = doJSON(t, r, http.MethodGet, "/api/project-types", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("open read: got=%d", w.Code)
	}
}

func TestEstimateFlowAndExport(t *testing.T) {
	r := newTestServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/project-types", gin.H{"name": "InteriorRepaint", "displayName": "Interior Repaint"}, nil)
	ptID := idFromEnvelope(t, w, "projectType")
	w = doJSON(t, r, http.MethodPost, "/api/surfaces", gin.H{"projectTypeId": ptID, "name": "CeilingsRepaint", "displayName": "Ceilings Repaint"}, nil)
	surfaceID := idFromEnvelope(t, w, "surface")
	w = doJSON(t, r, http.MethodPost, "/api/scenarios", gin.H{"surfaceId": surfaceID, "name": "LowVolumeNineOrTenFoot", "displayName": "Low Volume (9-10ft)"}, nil)
	scenarioID := idFromEnvelope(t, w, "scenario")
	w = doJSON(t, r, http.MethodPost, "/api/outputs", gin.H{"scenarioId": scenarioID, "outputValue": 100, "outputUnit": "sq_ft"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("create output: got=%d body=%s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/materials", gin.H{"name": "PaintGallon", "displayName": "Paint (Gallon)", "unit": "gallon"}, nil)
	materialID := idFromEnvelope(t, w, "material")

	w = doJSON(t, r, http.MethodPost, "/api/estimates", gin.H{"name": "Smith Residence"}, nil)
	estimateID := idFromEnvelope(t, w, "estimate")

	w = doJSON(t, r, http.MethodPost, "/api/estimate-items", gin.H{
		"estimateId":    estimateID,
		"projectTypeId": ptID,
		"surfaceId":     surfaceID,
		"scenarioId":    scenarioID,
		"size":          250,
		"costCode":      "PT-100",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("create item: got=%d body=%s", w.Code, w.Body.String())
	}
	itemID := idFromEnvelope(t, w, "item")

	w = doJSON(t, r, http.MethodPost, "/api/estimate-item-materials", gin.H{
		"estimateItemId": itemID,
		"materialId":     materialID,
		"quantity":       2,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("add item material: got=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/estimates/"+estimateID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get estimate: got=%d body=%s", w.Code, w.Body.String())
	}
	var getBody struct {
		Estimate types.EstimateWithItems `json:"estimate"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &getBody); err != nil {
		t.Fatalf("decode estimate: %v", err)
	}
	if len(getBody.Estimate.Items) != 1 {
		t.Fatalf("unexpected item count: got=%d want=1", len(getBody.Estimate.Items))
	}
	item := getBody.Estimate.Items[0]
	if item.OutputValue == nil || *item.OutputValue != 2.5 {
		t.Fatalf("unexpected day count over the wire: %v", item.OutputValue)
	}

	w = doJSON(t, r, http.MethodGet, "/api/estimates/"+estimateID+"/export", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export: got=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("unexpected content type: %q", ct)
	}
	wantDisposition := fmt.Sprintf("attachment; filename=%q", "builder-trend-"+estimateID+".csv")
	if cd := w.Header().Get("Content-Disposition"); cd != wantDisposition {
		t.Fatalf("unexpected disposition: got=%q want=%q", cd, wantDisposition)
	}
	lines := strings.Split(w.Body.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected line count: got=%d want=2", len(lines))
	}
	if lines[0] != `"Item","Project Type","Surface","Scenario","Size","Output Value","Output Unit","Cost Code","Materials"` {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	row := lines[1]
	for _, cell := range []string{`"Interior Repaint"`, `"Ceilings Repaint"`, `"250"`, `"2.5"`, `"sq_ft"`, `"PT-100"`, `"Paint (Gallon) (2 gallon)"`} {
		if !strings.Contains(row, cell) {
			t.Fatalf("row missing %s: %q", cell, row)
		}
	}
}

func TestEstimateNotFound(t *testing.T) {
	r := newTestServer(t, "")

	w := doJSON(t, r, http.MethodGet, "/api/estimates/"+uuid.NewString(), nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id: got=%d want=404", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/estimates/not-a-uuid", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: got=%d want=400", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/estimates/"+uuid.NewString()+"/export", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("export unknown id: got=%d want=404", w.Code)
	}
}

func TestItemRejectedWithoutOutput(t *testing.T) {
	r := newTestServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/project-types", gin.H{"name": "InteriorRepaint", "displayName": "Interior Repaint"}, nil)
	ptID := idFromEnvelope(t, w, "projectType")
	w = doJSON(t, r, http.MethodPost, "/api/surfaces", gin.H{"projectTypeId": ptID, "name": "Walls", "displayName": "Walls"}, nil)
	surfaceID := idFromEnvelope(t, w, "surface")
	w = doJSON(t, r, http.MethodPost, "/api/scenarios", gin.H{"surfaceId": surfaceID, "name": "HighVolume", "displayName": "High Volume"}, nil)
	scenarioID := idFromEnvelope(t, w, "scenario")
	w = doJSON(t, r, http.MethodPost, "/api/estimates", gin.H{}, nil)
	estimateID := idFromEnvelope(t, w, "estimate")

	w = doJSON(t, r, http.MethodPost, "/api/estimate-items", gin.H{
		"estimateId":    estimateID,
		"projectTypeId": ptID,
		"surfaceId":     surfaceID,
		"scenarioId":    scenarioID,
		"size":          250,
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("item without output: got=%d want=400 body=%s", w.Code, w.Body.String())
	}
}
