package status

import (
	"net/http"
	"sync"
	"time"

	"printagent/pkg/models"

	"github.com/gin-gonic/gin"
)

type AlertChecker interface {
	CheckLowStock(shopID string) ([]models.InventoryItem, error)
}

type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

// Handler exposes the agent's operational endpoints: a health check and a
// read-only low-stock report. This is not a platform API; the agent's writes
// go only to the shared data store.
type Handler struct {
	checker   AlertChecker
	shopID    string
	version   string
	startTime time.Time

	mu           sync.Mutex
	lastHealth   HealthStatus
	lastHealthAt time.Time
}

const healthCacheDuration = 5 * time.Second

func NewHandler(checker AlertChecker, shopID string, version string) *Handler {
	return &Handler{
		checker:   checker,
		shopID:    shopID,
		version:   version,
		startTime: time.Now(),
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/api/low-stock", h.LowStock)
}

func (h *Handler) Health(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if time.Since(h.lastHealthAt) > healthCacheDuration {
		h.lastHealth = HealthStatus{
			Status:      "ok",
			LastChecked: time.Now(),
			Uptime:      time.Since(h.startTime).String(),
			Version:     h.version,
		}
		h.lastHealthAt = time.Now()
	}

	c.JSON(http.StatusOK, h.lastHealth)
}

func (h *Handler) LowStock(c *gin.Context) {
	shopID := c.Query("shop_id")
	if shopID == "" {
		shopID = h.shopID
	}

	items, err := h.checker.CheckLowStock(shopID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch low stock items"})
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}
