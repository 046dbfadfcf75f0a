package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/safedocs/backend/internal/capture"
	"github.com/safedocs/backend/internal/eventbus"
	"github.com/safedocs/backend/internal/model"
	"github.com/safedocs/backend/internal/repository"
	"github.com/safedocs/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.SafetyTemplate{}, &model.Submission{}, &model.Attachment{},
		&model.AuditLog{}, &model.Job{}, &model.Person{}, &model.Location{}, &model.Category{},
	))
	require.NoError(t, service.InitDefaultTemplates(db))

	store, err := capture.NewStore(t.TempDir())
	require.NoError(t, err)

	submissionRepo := repository.NewSubmissionRepository(db)
	submissionService := service.NewSubmissionService(
		submissionRepo,
		repository.NewTemplateRepository(db),
		repository.NewRosterRepository(db),
		eventbus.NewSubmissionEventBus(),
	)
	exportService := service.NewExportService(
		submissionRepo, repository.NewAttachmentRepository(db), store, nil,
	)

	h := NewSubmissionHandler(submissionService, exportService)

	r := gin.New()
	r.POST("/api/submissions/open", h.Open)
	r.GET("/api/submissions/:ref/export", h.Export)
	r.POST("/api/sessions/:token/bind", h.Bind)
	r.GET("/api/sessions/:token/validate", h.Validate)
	r.POST("/api/sessions/:token/save", h.Save)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmissionFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	// 开启会话
	w := doJSON(t, r, http.MethodPost, "/api/submissions/open", gin.H{"kind": "TOOLBOX_MEETING"})
	require.Equal(t, http.StatusCreated, w.Code)

	var opened struct {
		Data struct {
			Token        string `json:"token"`
			Kind         string `json:"kind"`
			DocumentText string `json:"document_text"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))
	assert.Equal(t, "TOOLBOX_MEETING", opened.Data.Kind)

	// 写字段
	w = doJSON(t, r, http.MethodPost, "/api/sessions/"+opened.Data.Token+"/bind",
		gin.H{"key": "tbm_project", "value": "MRT CR206"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MRT CR206")

	// 未知字段键报 400
	w = doJSON(t, r, http.MethodPost, "/api/sessions/"+opened.Data.Token+"/bind",
		gin.H{"key": "no_such_key", "value": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 校验从不阻断保存
	w = doJSON(t, r, http.MethodGet, "/api/sessions/"+opened.Data.Token+"/validate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/sessions/"+opened.Data.Token+"/save", gin.H{"title": "TBM"})
	require.Equal(t, http.StatusOK, w.Code)

	var saved struct {
		Data struct {
			Ref string `json:"ref"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))

	// 同步导出返回 PDF
	w = doJSON(t, r, http.MethodGet, "/api/submissions/"+saved.Data.Ref+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])

	// 保存后会话失效
	w = doJSON(t, r, http.MethodPost, "/api/sessions/"+opened.Data.Token+"/bind",
		gin.H{"key": "tbm_project", "value": "y"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOpenUnknownTemplateKind(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/submissions/open", gin.H{"kind": "NO_SUCH"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
