package handler

import (
	"time"

	"github.com/blues/rfs/internal/format"
	"github.com/blues/rfs/internal/model"
)

// 请求模型

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Title            string `json:"title" binding:"required"`
	OwnerAddress     string `json:"owner_address" binding:"required"`
	GoalAmount       string `json:"goal_amount" binding:"required"` // wei，十进制字符串
	DurationSeconds  int64  `json:"duration_seconds" binding:"required"`
	InitialValuation string `json:"initial_valuation"` // wei，可选
}

// ContributeRequest 贡献请求
type ContributeRequest struct {
	Address string `json:"address" binding:"required"`
	Amount  string `json:"amount" binding:"required"` // wei，十进制字符串
}

// ValuationRequest 更新估值请求
type ValuationRequest struct {
	Caller    string `json:"caller" binding:"required"`
	Valuation string `json:"valuation" binding:"required"` // wei，十进制字符串
}

// ClaimRequest 提现/退款请求
type ClaimRequest struct {
	Address string `json:"address" binding:"required"`
}

// 响应模型

// ProjectResponse 项目响应模型
// 金额字段以精确字符串返回，另附无损压缩的展示字段
type ProjectResponse struct {
	Id            int64      `json:"id"`
	Title         string     `json:"title"`
	OwnerAddress  string     `json:"ownerAddress"`
	GoalAmount    string     `json:"goalAmount"`
	TotalRaised   string     `json:"totalRaised"`
	TotalShares   string     `json:"totalShares"`
	Valuation     string     `json:"valuation"`
	GoalEth       string     `json:"goalEth"`
	RaisedEth     string     `json:"raisedEth"`
	ValuationEth  string     `json:"valuationEth"`
	RaisedCompact string     `json:"raisedCompact"`
	SharesCompact string     `json:"sharesCompact"`
	Deadline      time.Time  `json:"deadline"`
	Finalized     bool       `json:"finalized"`
	FinalizedAt   *time.Time `json:"finalizedAt,omitempty"`
	Outcome       string     `json:"outcome"`
	Withdrawn     bool       `json:"withdrawn"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ContributionResponse 贡献记录响应模型
type ContributionResponse struct {
	ProjectId         int64      `json:"projectId"`
	Address           string     `json:"address"`
	AmountContributed string     `json:"amountContributed"`
	SharesHeld        string     `json:"sharesHeld"`
	AmountEth         string     `json:"amountEth"`
	SharesCompact     string     `json:"sharesCompact"`
	Refunded          bool       `json:"refunded"`
	RefundedAt        *time.Time `json:"refundedAt,omitempty"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// ContributionLogResponse 贡献流水响应模型
type ContributionLogResponse struct {
	Id           int64     `json:"id"`
	ProjectId    int64     `json:"projectId"`
	Address      string    `json:"address"`
	Amount       string    `json:"amount"`
	SharesIssued string    `json:"sharesIssued"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PayoutResponse 支付记录响应模型
type PayoutResponse struct {
	Id        int64     `json:"id"`
	ProjectId int64     `json:"projectId"`
	Address   string    `json:"address"`
	Amount    string    `json:"amount"`
	AmountEth string    `json:"amountEth"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	TxHash    string    `json:"txHash,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// 转换函数

// ToProjectResponse 将数据库模型转换为响应模型
func ToProjectResponse(project *model.ProjectModel) ProjectResponse {
	return ProjectResponse{
		Id:            project.Id,
		Title:         project.Title,
		OwnerAddress:  project.OwnerAddress,
		GoalAmount:    project.GoalAmount.String(),
		TotalRaised:   project.TotalRaised.String(),
		TotalShares:   project.TotalShares.String(),
		Valuation:     project.Valuation.String(),
		GoalEth:       format.FormatEther(project.GoalAmount.Big()),
		RaisedEth:     format.FormatEther(project.TotalRaised.Big()),
		ValuationEth:  format.FormatEther(project.Valuation.Big()),
		RaisedCompact: format.ToCompact(project.TotalRaised.Big()),
		SharesCompact: format.ToCompact(project.TotalShares.Big()),
		Deadline:      project.Deadline,
		Finalized:     project.Finalized,
		FinalizedAt:   project.FinalizedAt,
		Outcome:       string(project.Outcome),
		Withdrawn:     project.Withdrawn,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

// ToProjectResponseList 将数据库模型列表转换为响应模型列表
func ToProjectResponseList(projects []model.ProjectModel) []ProjectResponse {
	result := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		result[i] = ToProjectResponse(&project)
	}
	return result
}

// ToContributionResponse 将贡献记录转换为响应模型
func ToContributionResponse(record *model.ContributionModel) ContributionResponse {
	return ContributionResponse{
		ProjectId:         record.ProjectId,
		Address:           record.Address,
		AmountContributed: record.AmountContributed.String(),
		SharesHeld:        record.SharesHeld.String(),
		AmountEth:         format.FormatEther(record.AmountContributed.Big()),
		SharesCompact:     format.ToCompact(record.SharesHeld.Big()),
		Refunded:          record.Refunded,
		RefundedAt:        record.RefundedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}

// ToContributionResponseList 将贡献记录列表转换为响应模型列表
func ToContributionResponseList(records []model.ContributionModel) []ContributionResponse {
	result := make([]ContributionResponse, len(records))
	for i, record := range records {
		result[i] = ToContributionResponse(&record)
	}
	return result
}

// ToContributionLogResponseList 将贡献流水列表转换为响应模型列表
func ToContributionLogResponseList(logs []model.ContributionLogModel) []ContributionLogResponse {
	result := make([]ContributionLogResponse, len(logs))
	for i, entry := range logs {
		result[i] = ContributionLogResponse{
			Id:           entry.Id,
			ProjectId:    entry.ProjectId,
			Address:      entry.Address,
			Amount:       entry.Amount.String(),
			SharesIssued: entry.SharesIssued.String(),
			CreatedAt:    entry.CreatedAt,
		}
	}
	return result
}

// ToPayoutResponse 将支付记录转换为响应模型
func ToPayoutResponse(record *model.PayoutRecordModel) PayoutResponse {
	resp := PayoutResponse{
		Id:        record.Id,
		ProjectId: record.ProjectId,
		Address:   record.Address,
		Amount:    record.Amount.String(),
		AmountEth: format.FormatEther(record.Amount.Big()),
		Type:      string(record.Type),
		Status:    string(record.Status),
		CreatedAt: record.CreatedAt,
	}
	if record.TxHash != nil {
		resp.TxHash = *record.TxHash
	}
	return resp
}
