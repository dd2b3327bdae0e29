package model

import (
	"time"
)

// ContributionLogModel 贡献流水
// 追加式审计记录，每次contribute写入一条，不参与账本核心校验
type ContributionLogModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	ProjectId    int64  `json:"project_id" gorm:"not null;index"`
	Address      string `json:"address" gorm:"not null;index"`
	Amount       BigInt `json:"amount" gorm:"not null"`
	SharesIssued BigInt `json:"shares_issued" gorm:"not null"`
}

// TableName 自定义表名
func (ContributionLogModel) TableName() string {
	return "contribution_log"
}
