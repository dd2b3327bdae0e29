package model

import (
	"time"
)

// ProjectModel 科研众筹项目模型
type ProjectModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title        string `json:"title" gorm:"not null" binding:"required"`
	OwnerAddress string `json:"owner_address" gorm:"not null;index"`

	// 众筹信息（最小单位wei）
	GoalAmount  BigInt `json:"goal_amount" gorm:"not null"`
	TotalRaised BigInt `json:"total_raised"`
	TotalShares BigInt `json:"total_shares"`
	Valuation   BigInt `json:"valuation"`

	// 时间信息
	Deadline time.Time `json:"deadline" gorm:"not null"`

	// 终结状态：false -> true 单向转换
	Finalized   bool           `json:"finalized" gorm:"default:false"`
	FinalizedAt *time.Time     `json:"finalized_at"`
	Outcome     ProjectOutcome `json:"outcome" gorm:"default:''"`

	// 创建者提现标记（达标项目只能提现一次）
	Withdrawn   bool       `json:"withdrawn" gorm:"default:false"`
	WithdrawnAt *time.Time `json:"withdrawn_at"`
}

// ProjectOutcome 项目终结结果
type ProjectOutcome string

const (
	ProjectOutcomeNone    ProjectOutcome = ""        // 未终结
	ProjectOutcomeSuccess ProjectOutcome = "success" // 达到目标金额
	ProjectOutcomeFailed  ProjectOutcome = "failed"  // 未达到目标金额
)

// IsOpen 项目是否仍可接受贡献（未终结且未到截止时间）
func (p *ProjectModel) IsOpen(now time.Time) bool {
	return !p.Finalized && now.Before(p.Deadline)
}

// GoalReached 是否已达到目标金额
func (p *ProjectModel) GoalReached() bool {
	return p.TotalRaised.Cmp(&p.GoalAmount.Int) >= 0
}

// TableName 自定义表名
func (ProjectModel) TableName() string {
	return "project"
}
