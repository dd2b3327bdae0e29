package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/rfs/internal/ledger"
	"github.com/gin-gonic/gin"
)

type PayoutHandler struct {
	ledger *ledger.Ledger
}

func NewPayoutHandler(l *ledger.Ledger) *PayoutHandler {
	return &PayoutHandler{ledger: l}
}

// Withdraw 创建者提现（仅达标且已终结的项目）
func (h *PayoutHandler) Withdraw(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	payout, err := h.ledger.Withdraw(id, req.Address)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "提现申请成功", ToPayoutResponse(payout))
}

// Refund 贡献者退款（仅未达标且已终结的项目）
func (h *PayoutHandler) Refund(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	payout, err := h.ledger.Refund(id, req.Address)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "退款申请成功", ToPayoutResponse(payout))
}
