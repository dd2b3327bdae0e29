package model

import (
	"time"
)

// PayoutRecordModel 支付记录
// 项目终结后的资金流出：达标项目创建者提现，未达标项目贡献者退款
type PayoutRecordModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId int64      `json:"project_id" gorm:"not null;index"`
	Address   string     `json:"address" gorm:"not null"`
	Amount    BigInt     `json:"amount" gorm:"not null"`
	Type      PayoutType `json:"type" gorm:"not null"`

	// 链上执行信息
	// 待上链的记录尚无交易哈希，存NULL以免撞上唯一索引
	TxHash   *string      `json:"tx_hash" gorm:"uniqueIndex"`
	BlockNum int64        `json:"block_num"`
	Status   PayoutStatus `json:"status" gorm:"default:'pending'"`
}

// PayoutType 支付类型
type PayoutType string

const (
	PayoutTypeWithdraw PayoutType = "withdraw" // 创建者提现
	PayoutTypeRefund   PayoutType = "refund"   // 贡献者退款
)

// PayoutStatus 支付状态
type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "pending" // 待上链
	PayoutStatusSuccess PayoutStatus = "success" // 成功
	PayoutStatusFailed  PayoutStatus = "failed"  // 失败
)

// TableName 自定义表名
func (PayoutRecordModel) TableName() string {
	return "payout_record"
}
