package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"printagent/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) CheckLowStock(shopID string) ([]models.InventoryItem, error) {
	args := m.Called(shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InventoryItem), args.Error(1)
}

func setupRouter(checker AlertChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(checker, "", "test").RegisterRoutes(router)
	return router
}

func TestHealth(t *testing.T) {
	router := setupRouter(new(MockChecker))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body HealthStatus
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "test", body.Version)
}

func TestLowStockReport(t *testing.T) {
	mockChecker := new(MockChecker)
	router := setupRouter(mockChecker)

	mockChecker.On("CheckLowStock", "shop-5").Return([]models.InventoryItem{
		{ID: "item-1", Name: "A3 Paper", Stock: 2, Threshold: 50},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/low-stock?shop_id=shop-5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A3 Paper")
	assert.Contains(t, w.Body.String(), `"count":1`)
	mockChecker.AssertExpectations(t)
}

func TestLowStockReportError(t *testing.T) {
	mockChecker := new(MockChecker)
	router := setupRouter(mockChecker)

	mockChecker.On("CheckLowStock", "").Return(nil, errors.New("timeout"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/low-stock", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
