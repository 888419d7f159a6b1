package handlers

import (
	"net/http"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

// KillsHandler handles HTTP requests for the kill board
type KillsHandler struct {
	killUseCase  domain.KillUseCase
	errorHandler *middleware.ErrorHandler
}

// NewKillsHandler creates a new kill-board handler
func NewKillsHandler(killUseCase domain.KillUseCase, errorHandler *middleware.ErrorHandler) *KillsHandler {
	return &KillsHandler{
		killUseCase:  killUseCase,
		errorHandler: errorHandler,
	}
}

// AddKillsRequest represents the add-kills request body
type AddKillsRequest struct {
	Player  string `json:"player" binding:"required" example:"Shadow"`
	Regular int64  `json:"regular" example:"3"`
	Team    int64  `json:"team" example:"1"`
	Month   string `json:"month" example:"2026-08"`
}

// AddKills handles recording kills for a player
// @Summary Record kills
// @Description Add regular and team kills for a player; team kills count half, rounded up
// @Tags kills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddKillsRequest true "Kills to record"
// @Success 200 {object} domain.KillStats
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Router /kills [post]
func (h *KillsHandler) AddKills(c *gin.Context) {
	var req AddKillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorHandler.RespondError(c, domain.NewValidationError("body", err.Error()))
		return
	}

	actorID := c.GetString("user_id")
	stats, err := h.killUseCase.AddKills(actorID, req.Player, req.Regular, req.Team, req.Month)
	if err != nil {
		h.errorHandler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Leaderboard handles the monthly leaderboard query
// @Summary Monthly leaderboard
// @Description Top players for the month, by total kills descending
// @Tags kills
// @Produce json
// @Param month path string true "Month key (YYYY-MM)"
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 500 {object} domain.ErrorResponse
// @Router /leaderboard/{month} [get]
func (h *KillsHandler) Leaderboard(c *gin.Context) {
	entries, err := h.killUseCase.Leaderboard(c.Param("month"))
	if err != nil {
		h.errorHandler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// PlayerStats handles a single player's stats query
// @Summary Player stats
// @Description One player's kill stats for the month
// @Tags kills
// @Produce json
// @Param month path string true "Month key (YYYY-MM)"
// @Param player path string true "Player name"
// @Success 200 {object} domain.LeaderboardEntry
// @Failure 400 {object} domain.ErrorResponse
// @Router /leaderboard/{month}/{player} [get]
func (h *KillsHandler) PlayerStats(c *gin.Context) {
	entry, err := h.killUseCase.PlayerStats(c.Param("player"), c.Param("month"))
	if err != nil {
		h.errorHandler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ResetMonth handles wiping a month's board
// @Summary Reset month
// @Description Wipe a month's kill board
// @Tags kills
// @Produce json
// @Security BearerAuth
// @Param month path string true "Month key (YYYY-MM)"
// @Success 200 {object} map[string]string
// @Failure 403 {object} domain.ErrorResponse
// @Router /kills/reset/{month} [post]
func (h *KillsHandler) ResetMonth(c *gin.Context) {
	actorID := c.GetString("user_id")
	if err := h.killUseCase.ResetMonth(actorID, c.Param("month")); err != nil {
		h.errorHandler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
