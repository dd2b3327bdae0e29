package ledger

import (
	"errors"

	"github.com/blues/rfs/internal/logger"
	"github.com/blues/rfs/internal/model"
	"gorm.io/gorm"
)

// Withdraw 创建者提现
// 仅在项目终结且达标后由创建者调用，且只能提现一次
func (l *Ledger) Withdraw(projectId int64, caller string) (*model.PayoutRecordModel, error) {
	lock := l.locks.Get(projectId)
	lock.Lock()
	defer lock.Unlock()

	var payout *model.PayoutRecordModel
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var project model.ProjectModel
		if err := tx.First(&project, projectId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !project.Finalized {
			return ErrNotFinalized
		}
		if project.OwnerAddress != caller {
			return ErrUnauthorized
		}
		if project.Outcome != model.ProjectOutcomeSuccess {
			return ErrGoalNotMet
		}
		if project.Withdrawn {
			return ErrAlreadyWithdrawn
		}

		now := l.Now()
		updates := map[string]interface{}{
			"withdrawn":    true,
			"withdrawn_at": now,
		}
		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return err
		}

		record := model.PayoutRecordModel{
			ProjectId: projectId,
			Address:   project.OwnerAddress,
			Amount:    project.TotalRaised,
			Type:      model.PayoutTypeWithdraw,
			Status:    model.PayoutStatusPending,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		payout = &record
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Withdraw requested for project %d by %s: amount=%s",
		projectId, caller, payout.Amount.String())
	return payout, nil
}

// Refund 贡献者退款
// 仅在项目终结且未达标后由贡献者调用，每个地址只能退款一次，
// 退款金额为该地址的累计贡献金额
func (l *Ledger) Refund(projectId int64, caller string) (*model.PayoutRecordModel, error) {
	lock := l.locks.Get(projectId)
	lock.Lock()
	defer lock.Unlock()

	var payout *model.PayoutRecordModel
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var project model.ProjectModel
		if err := tx.First(&project, projectId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !project.Finalized {
			return ErrNotFinalized
		}
		if project.Outcome == model.ProjectOutcomeSuccess {
			return ErrGoalMet
		}

		var record model.ContributionModel
		err := tx.Where("project_id = ? AND address = ?", projectId, caller).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnauthorized
		}
		if err != nil {
			return err
		}
		if record.Refunded {
			return ErrAlreadyRefunded
		}

		now := l.Now()
		updates := map[string]interface{}{
			"refunded":    true,
			"refunded_at": now,
		}
		if err := tx.Model(&record).Updates(updates).Error; err != nil {
			return err
		}

		payoutRecord := model.PayoutRecordModel{
			ProjectId: projectId,
			Address:   caller,
			Amount:    record.AmountContributed,
			Type:      model.PayoutTypeRefund,
			Status:    model.PayoutStatusPending,
		}
		if err := tx.Create(&payoutRecord).Error; err != nil {
			return err
		}

		payout = &payoutRecord
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Refund requested for project %d by %s: amount=%s",
		projectId, caller, payout.Amount.String())
	return payout, nil
}
