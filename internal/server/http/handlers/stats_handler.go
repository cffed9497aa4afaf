package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnMutemi/WritersHub-sub000/internal/server/http/dto"
)

// StatsHandler serves the per-role dashboard aggregates.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Writer handles GET /api/stats/writer.
func (h *StatsHandler) Writer(c *gin.Context) {
	user := CurrentUser(c)
	stats, err := h.facade.WriterStats(c.Request.Context(), user.ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.WriterStatsResponse{
		ActiveBids:      stats.ActiveBids,
		ActiveOrders:    stats.ActiveOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalEarned:     stats.TotalEarned,
		Balance:         stats.Balance,
	})
}

// Client handles GET /api/stats/client.
func (h *StatsHandler) Client(c *gin.Context) {
	user := CurrentUser(c)
	stats, err := h.facade.ClientStats(c.Request.Context(), user.ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ClientStatsResponse{
		OpenJobs:        stats.OpenJobs,
		ActiveOrders:    stats.ActiveOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalSpent:      stats.TotalSpent,
	})
}

// Admin handles GET /api/stats/admin.
func (h *StatsHandler) Admin(c *gin.Context) {
	stats, err := h.facade.AdminStats(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.AdminStatsResponse{
		TotalUsers:      stats.TotalUsers,
		PendingWriters:  stats.PendingWriters,
		OpenJobs:        stats.OpenJobs,
		ActiveOrders:    stats.ActiveOrders,
		CompletedOrders: stats.CompletedOrders,
		CompletedVolume: stats.CompletedVolume,
		Commission:      stats.Commission,
	})
}
