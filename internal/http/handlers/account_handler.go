package handlers

import (
	"net/http"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountUseCase domain.AccountUseCase
	errorHandler   *middleware.ErrorHandler
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUseCase domain.AccountUseCase, errorHandler *middleware.ErrorHandler) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		errorHandler:   errorHandler,
	}
}

// AccountResponse represents account information
type AccountResponse struct {
	UserID    string `json:"user_id" example:"283971505754"`
	Balance   int64  `json:"balance" example:"500"`
	TotalWon  int64  `json:"total_won" example:"1200"`
	TotalLost int64  `json:"total_lost" example:"700"`
}

// GetAccount handles getting account information
// @Summary Get account
// @Description Get a user's economy account, creating it on first access
// @Tags accounts
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} AccountResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accountUseCase.GetAccount(c.Param("id"))
	if err != nil {
		h.errorHandler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AccountResponse{
		UserID:    account.UserID,
		Balance:   account.Balance,
		TotalWon:  account.TotalWon,
		TotalLost: account.TotalLost,
	})
}

// ClaimDaily handles the daily reward claim
// @Summary Claim daily reward
// @Description Grant the daily reward, at most once per 24 hours
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} domain.DailyClaimResult
// @Failure 400 {object} domain.ErrorResponse
// @Router /accounts/{id}/daily [post]
func (h *AccountHandler) ClaimDaily(c *gin.Context) {
	result, err := h.accountUseCase.ClaimDaily(c.Param("id"))
	if err != nil {
		h.errorHandler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
