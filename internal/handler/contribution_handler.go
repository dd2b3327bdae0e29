package handler

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/blues/rfs/internal/ledger"
	"github.com/gin-gonic/gin"
)

type ContributionHandler struct {
	ledger *ledger.Ledger
}

func NewContributionHandler(l *ledger.Ledger) *ContributionHandler {
	return &ContributionHandler{ledger: l}
}

// Contribute 向项目贡献资金
func (h *ContributionHandler) Contribute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "无效的贡献金额")
		return
	}

	record, err := h.ledger.Contribute(id, req.Address, amount)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "贡献成功", ToContributionResponse(record))
}

// GetContributionLogs 获取项目贡献流水（分页）
func (h *ContributionHandler) GetContributionLogs(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	logs, total, err := h.ledger.GetContributionLogs(id, page, pageSize)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	SuccessResponse(c, http.StatusOK, "", gin.H{
		"logs": ToContributionLogResponseList(logs),
		"pagination": Pagination{
			Page:      page,
			PageSize:  pageSize,
			Total:     total,
			TotalPage: totalPage,
		},
	})
}

// GetHolderShares 查询地址在项目中持有的份额
func (h *ContributionHandler) GetHolderShares(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	address := c.Param("address")
	shares, err := h.ledger.HolderShares(id, address)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"project_id": id,
		"address":    address,
		"shares":     shares.String(),
	})
}

// GetAccountContributions 查询地址参与的所有贡献记录
func (h *ContributionHandler) GetAccountContributions(c *gin.Context) {
	address := c.Param("address")

	records, err := h.ledger.ListHolderContributions(address)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"address":       address,
		"contributions": ToContributionResponseList(records),
	})
}
