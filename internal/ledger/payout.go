package ledger

import (
	"errors"
	"fmt"

	"github.com/blues/rfs/internal/model"
	"gorm.io/gorm"
)

// ListPendingPayouts 获取待上链的支付记录
func (l *Ledger) ListPendingPayouts(limit int) ([]model.PayoutRecordModel, error) {
	var records []model.PayoutRecordModel
	if err := l.db.Where("status = ?", model.PayoutStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("获取待处理支付记录失败: %w", err)
	}
	return records, nil
}

// MarkPayoutResult 记录支付记录的链上执行结果
func (l *Ledger) MarkPayoutResult(payoutId int64, txHash string, blockNum int64, status model.PayoutStatus) error {
	var record model.PayoutRecordModel
	if err := l.db.First(&record, payoutId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: 支付记录 %d", ErrNotFound, payoutId)
		}
		return err
	}

	updates := map[string]interface{}{
		"status": status,
	}
	if txHash != "" {
		updates["tx_hash"] = txHash
	}
	if blockNum > 0 {
		updates["block_num"] = blockNum
	}

	if err := l.db.Model(&record).Updates(updates).Error; err != nil {
		return fmt.Errorf("更新支付记录 %d 失败: %w", payoutId, err)
	}
	return nil
}
