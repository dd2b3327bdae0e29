package handler

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/blues/rfs/internal/ledger"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	ledger *ledger.Ledger
}

func NewProjectHandler(l *ledger.Ledger) *ProjectHandler {
	return &ProjectHandler{ledger: l}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	goal, ok := new(big.Int).SetString(req.GoalAmount, 10)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "无效的目标金额")
		return
	}

	var initialValuation *big.Int
	if req.InitialValuation != "" {
		initialValuation, ok = new(big.Int).SetString(req.InitialValuation, 10)
		if !ok {
			ErrorResponse(c, http.StatusBadRequest, "无效的初始估值")
			return
		}
	}

	project, err := h.ledger.CreateProject(req.Title, req.OwnerAddress, goal, req.DurationSeconds, initialValuation)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "项目创建成功", ToProjectResponse(project))
}

// GetProjects 获取项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.ledger.ListProjects()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"projects": ToProjectResponseList(projects),
		"total":    len(projects),
	})
}

// GetProject 获取单个项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	project, err := h.ledger.GetProject(id)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", ToProjectResponse(project))
}

// GetProjectStats 获取项目统计信息
func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	stats, err := h.ledger.ProjectStats(id)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", stats)
}

// GetSharePrice 获取份额单价
func (h *ProjectHandler) GetSharePrice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	price, err := h.ledger.SharePrice(id)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"project_id":  id,
		"share_price": price,
	})
}

// UpdateValuation 更新项目估值
func (h *ProjectHandler) UpdateValuation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var req ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	valuation, ok := new(big.Int).SetString(req.Valuation, 10)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "无效的估值")
		return
	}

	project, err := h.ledger.UpdateValuation(id, req.Caller, valuation)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "估值更新成功", ToProjectResponse(project))
}

// FinalizeProject 终结项目
func (h *ProjectHandler) FinalizeProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	project, err := h.ledger.Finalize(id)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "项目终结成功", ToProjectResponse(project))
}
