package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"

	"tasktracker/internal/adapter/filedb"
	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/adapter/storage"
	appservice "tasktracker/internal/app/service"
	"tasktracker/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// IntegrationSuiteBase wires the real router, service and JSON document
// repository over a fresh data directory for every test.
type IntegrationSuiteBase struct {
	suite.Suite

	DataDir string
	Router  *gin.Engine
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.DataDir = s.T().TempDir()

	store, err := storage.NewLocalStorage(s.DataDir)
	s.Require().NoError(err)

	taskRepository := filedb.NewTaskRepository(store, filedb.DefaultDocument)
	s.Require().NoError(taskRepository.Init(context.Background()))

	taskService, err := appservice.NewTaskService(taskRepository)
	s.Require().NoError(err)

	router := gin.New()
	httpadapter.RegisterRoutes(router,
		handlers.NewHealthHandler(taskService, "tasktracker", "test"),
		handlers.NewTaskHandler(taskService),
	)
	s.Router = router
}

func (s *IntegrationSuiteBase) Do(method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) Decode(rec *httptest.ResponseRecorder, target any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}

func (s *IntegrationSuiteBase) RequireStatus(rec *httptest.ResponseRecorder, code int) {
	s.Require().Equal(code, rec.Code, rec.Body.String())
}

// Document returns the raw task document as persisted on disk.
func (s *IntegrationSuiteBase) Document() []byte {
	data, err := os.ReadFile(filepath.Join(s.DataDir, filedb.DefaultDocument))
	s.Require().NoError(err)
	return data
}
