package ledger

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/blues/rfs/internal/logger"
	"github.com/blues/rfs/internal/model"
	"gorm.io/gorm"
)

// Config 账本配置
type Config struct {
	// ShareRate 份额发行比例：shares = amount * ShareRate，全局固定
	ShareRate int64
	// InitialSharePrice 总份额为0时的初始份额单价（wei）
	InitialSharePrice *big.Int
}

// Ledger 项目众筹账本
// 唯一拥有项目与贡献记录的组件，所有状态变更只通过账本操作进行
type Ledger struct {
	db                *gorm.DB
	shareRate         *big.Int
	initialSharePrice *big.Int
	locks             *projectLocks

	// Now 当前时间来源，测试中可替换
	Now func() time.Time
}

// New 创建账本
func New(db *gorm.DB, cfg Config) *Ledger {
	rate := cfg.ShareRate
	if rate <= 0 {
		rate = 1
	}
	price := cfg.InitialSharePrice
	if price == nil {
		price = big.NewInt(0)
	}

	return &Ledger{
		db:                db,
		shareRate:         big.NewInt(rate),
		initialSharePrice: new(big.Int).Set(price),
		locks:             newProjectLocks(),
		Now:               time.Now,
	}
}

// CreateProject 创建项目
// id由数据库自增分配，从1开始；deadline = 当前时间 + durationSeconds
func (l *Ledger) CreateProject(title, owner string, goal *big.Int, durationSeconds int64, initialValuation *big.Int) (*model.ProjectModel, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: 项目标题不能为空", ErrInvalidInput)
	}
	if owner == "" {
		return nil, fmt.Errorf("%w: 创建者地址不能为空", ErrInvalidInput)
	}
	if goal == nil || goal.Sign() <= 0 {
		return nil, fmt.Errorf("%w: 目标金额必须大于0", ErrInvalidInput)
	}
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("%w: 众筹时长必须大于0", ErrInvalidInput)
	}
	if initialValuation != nil && initialValuation.Sign() < 0 {
		return nil, fmt.Errorf("%w: 初始估值不能为负数", ErrInvalidInput)
	}

	now := l.Now()
	project := &model.ProjectModel{
		Title:        title,
		OwnerAddress: owner,
		GoalAmount:   model.NewBigIntFromBig(goal),
		TotalRaised:  model.NewBigInt(0),
		TotalShares:  model.NewBigInt(0),
		Valuation:    model.NewBigIntFromBig(initialValuation),
		Deadline:     now.Add(time.Duration(durationSeconds) * time.Second),
	}

	if err := l.db.Create(project).Error; err != nil {
		return nil, fmt.Errorf("创建项目失败: %w", err)
	}

	logger.Info("Created project %d: %s, goal=%s wei, deadline=%s",
		project.Id, project.Title, project.GoalAmount.String(), project.Deadline.Format(time.RFC3339))
	return project, nil
}

// Contribute 向项目贡献资金
// 原子操作：累计金额、发行份额、更新贡献者记录、写入流水要么全部生效要么全部失败
func (l *Ledger) Contribute(projectId int64, contributor string, amount *big.Int) (*model.ContributionModel, error) {
	if contributor == "" {
		return nil, fmt.Errorf("%w: 贡献者地址不能为空", ErrInvalidInput)
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: 贡献金额必须大于0", ErrInvalidInput)
	}

	lock := l.locks.Get(projectId)
	lock.Lock()
	defer lock.Unlock()

	shares := new(big.Int).Mul(amount, l.shareRate)

	var contribution *model.ContributionModel
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var project model.ProjectModel
		if err := tx.First(&project, projectId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if project.Finalized {
			return ErrFinalized
		}
		if !l.Now().Before(project.Deadline) {
			return ErrExpired
		}

		// 更新项目累计金额与份额
		newRaised := new(big.Int).Add(project.TotalRaised.Big(), amount)
		newShares := new(big.Int).Add(project.TotalShares.Big(), shares)
		updates := map[string]interface{}{
			"total_raised": model.NewBigIntFromBig(newRaised),
			"total_shares": model.NewBigIntFromBig(newShares),
		}
		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return err
		}

		// 累加贡献者记录，首次贡献时创建
		var record model.ContributionModel
		err := tx.Where("project_id = ? AND address = ?", projectId, contributor).First(&record).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = model.ContributionModel{
				ProjectId:         projectId,
				Address:           contributor,
				AmountContributed: model.NewBigIntFromBig(amount),
				SharesHeld:        model.NewBigIntFromBig(shares),
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			newAmount := model.NewBigIntFromBig(new(big.Int).Add(record.AmountContributed.Big(), amount))
			newHeld := model.NewBigIntFromBig(new(big.Int).Add(record.SharesHeld.Big(), shares))
			recordUpdates := map[string]interface{}{
				"amount_contributed": newAmount,
				"shares_held":        newHeld,
			}
			if err := tx.Model(&record).Updates(recordUpdates).Error; err != nil {
				return err
			}
			record.AmountContributed = newAmount
			record.SharesHeld = newHeld
		}

		// 追加贡献流水
		logEntry := model.ContributionLogModel{
			ProjectId:    projectId,
			Address:      contributor,
			Amount:       model.NewBigIntFromBig(amount),
			SharesIssued: model.NewBigIntFromBig(shares),
		}
		if err := tx.Create(&logEntry).Error; err != nil {
			return err
		}

		contribution = &record
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Contribution to project %d from %s: amount=%s, shares=%s",
		projectId, contributor, amount.String(), shares.String())
	return contribution, nil
}

// UpdateValuation 更新项目估值
// 仅项目创建者可操作，且项目必须未终结
func (l *Ledger) UpdateValuation(projectId int64, caller string, newValuation *big.Int) (*model.ProjectModel, error) {
	if newValuation == nil || newValuation.Sign() <= 0 {
		return nil, fmt.Errorf("%w: 估值必须大于0", ErrInvalidInput)
	}

	lock := l.locks.Get(projectId)
	lock.Lock()
	defer lock.Unlock()

	var project model.ProjectModel
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, projectId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if project.Finalized {
			return ErrFinalized
		}
		if project.OwnerAddress != caller {
			return ErrUnauthorized
		}

		if err := tx.Model(&project).Update("valuation", model.NewBigIntFromBig(newValuation)).Error; err != nil {
			return err
		}
		project.Valuation = model.NewBigIntFromBig(newValuation)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Updated valuation of project %d to %s wei", projectId, newValuation.String())
	return &project, nil
}

// Finalize 终结项目
// 满足任一条件即可终结：已到截止时间，或已达到目标金额；
// finalized是单向转换，达标与否决定后续走提现还是退款
func (l *Ledger) Finalize(projectId int64) (*model.ProjectModel, error) {
	lock := l.locks.Get(projectId)
	lock.Lock()
	defer lock.Unlock()

	var project model.ProjectModel
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, projectId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if project.Finalized {
			return ErrFinalized
		}

		now := l.Now()
		expired := !now.Before(project.Deadline)
		if !expired && !project.GoalReached() {
			return ErrNotYetEligible
		}

		outcome := model.ProjectOutcomeFailed
		if project.GoalReached() {
			outcome = model.ProjectOutcomeSuccess
		}

		updates := map[string]interface{}{
			"finalized":    true,
			"finalized_at": now,
			"outcome":      outcome,
		}
		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return err
		}

		project.Finalized = true
		project.FinalizedAt = &now
		project.Outcome = outcome
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Finalized project %d with outcome %s: raised=%s, goal=%s",
		projectId, project.Outcome, project.TotalRaised.String(), project.GoalAmount.String())
	return &project, nil
}
