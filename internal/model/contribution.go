package model

import (
	"time"
)

// ContributionModel 贡献记录
// 按(项目, 地址)累计，同一地址多次贡献合并为一条累计记录
type ContributionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId int64  `json:"project_id" gorm:"not null;uniqueIndex:idx_contribution_project_address"`
	Address   string `json:"address" gorm:"not null;uniqueIndex:idx_contribution_project_address"`

	// 累计金额与份额（最小单位，只增不减）
	AmountContributed BigInt `json:"amount_contributed" gorm:"not null"`
	SharesHeld        BigInt `json:"shares_held" gorm:"not null"`

	// 退款标记（未达标项目每个地址只能退款一次）
	Refunded   bool       `json:"refunded" gorm:"default:false"`
	RefundedAt *time.Time `json:"refunded_at"`
}

// TableName 自定义表名
func (ContributionModel) TableName() string {
	return "contribution"
}
