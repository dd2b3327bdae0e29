package ledger

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/blues/rfs/internal/format"
	"github.com/blues/rfs/internal/model"
	"gorm.io/gorm"
)

var priceScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(format.EtherDecimals), nil)

// ListProjects 获取项目列表，按id升序
func (l *Ledger) ListProjects() ([]model.ProjectModel, error) {
	var projects []model.ProjectModel
	if err := l.db.Order("id ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取项目列表失败: %w", err)
	}
	return projects, nil
}

// GetProject 获取项目详情
func (l *Ledger) GetProject(projectId int64) (*model.ProjectModel, error) {
	var project model.ProjectModel
	if err := l.db.First(&project, projectId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("获取项目详情失败: %w", err)
	}
	return &project, nil
}

// HolderShares 查询地址在项目中持有的份额，无记录时返回0
func (l *Ledger) HolderShares(projectId int64, address string) (*big.Int, error) {
	var record model.ContributionModel
	err := l.db.Where("project_id = ? AND address = ?", projectId, address).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询持有份额失败: %w", err)
	}
	return record.SharesHeld.Big(), nil
}

// ListHolderContributions 查询地址参与的所有贡献记录
func (l *Ledger) ListHolderContributions(address string) ([]model.ContributionModel, error) {
	var records []model.ContributionModel
	if err := l.db.Where("address = ?", address).Order("project_id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询贡献记录失败: %w", err)
	}
	return records, nil
}

// ListFinalizable 获取已过截止时间但尚未终结的项目
func (l *Ledger) ListFinalizable() ([]model.ProjectModel, error) {
	var projects []model.ProjectModel
	if err := l.db.Where("finalized = ? AND deadline <= ?", false, l.Now()).
		Order("id ASC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取待终结项目失败: %w", err)
	}
	return projects, nil
}

// SharePrice 计算份额单价
// 单价 = 估值 / 总份额，用big.Int精确除法输出18位小数的wei计价字符串；
// 总份额为0时返回配置的初始单价，绝不发生除零
func (l *Ledger) SharePrice(projectId int64) (string, error) {
	project, err := l.GetProject(projectId)
	if err != nil {
		return "", err
	}

	totalShares := project.TotalShares.Big()
	if totalShares.Sign() == 0 {
		scaled := new(big.Int).Mul(l.initialSharePrice, priceScale)
		return format.ToFixedDecimal(scaled, format.EtherDecimals), nil
	}

	scaled := new(big.Int).Mul(project.Valuation.Big(), priceScale)
	scaled.Quo(scaled, totalShares)
	return format.ToFixedDecimal(scaled, format.EtherDecimals), nil
}

// GetContributionLogs 获取项目贡献流水（分页）
func (l *Ledger) GetContributionLogs(projectId int64, page, pageSize int) ([]model.ContributionLogModel, int64, error) {
	var logs []model.ContributionLogModel
	var total int64

	if err := l.db.Model(&model.ContributionLogModel{}).Where("project_id = ?", projectId).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("获取贡献流水总数失败: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := l.db.Where("project_id = ?", projectId).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("获取贡献流水失败: %w", err)
	}

	return logs, total, nil
}

// ProjectStats 获取项目统计信息
func (l *Ledger) ProjectStats(projectId int64) (map[string]interface{}, error) {
	project, err := l.GetProject(projectId)
	if err != nil {
		return nil, err
	}

	var contributorCount int64
	if err := l.db.Model(&model.ContributionModel{}).
		Where("project_id = ?", projectId).
		Count(&contributorCount).Error; err != nil {
		return nil, fmt.Errorf("获取贡献者数量失败: %w", err)
	}

	var contributionCount int64
	if err := l.db.Model(&model.ContributionLogModel{}).
		Where("project_id = ?", projectId).
		Count(&contributionCount).Error; err != nil {
		return nil, fmt.Errorf("获取贡献次数失败: %w", err)
	}

	// 完成百分比用整数基点计算，金额不经过浮点数
	progress := "0.00"
	if project.GoalAmount.Sign() > 0 {
		bp := new(big.Int).Mul(project.TotalRaised.Big(), big.NewInt(10000))
		bp.Quo(bp, project.GoalAmount.Big())
		intPart, fracPart := new(big.Int).QuoRem(bp, big.NewInt(100), new(big.Int))
		progress = fmt.Sprintf("%s.%02d", intPart.String(), fracPart.Int64())
	}

	remaining := time.Duration(0)
	if !project.Finalized {
		if now := l.Now(); now.Before(project.Deadline) {
			remaining = project.Deadline.Sub(now)
		}
	}

	return map[string]interface{}{
		"project_id":           project.Id,
		"total_raised":         project.TotalRaised.String(),
		"goal_amount":          project.GoalAmount.String(),
		"total_shares":         project.TotalShares.String(),
		"progress_percent":     progress,
		"contributor_count":    contributorCount,
		"contribution_count":   contributionCount,
		"remaining_time":       remaining.String(),
		"finalized":            project.Finalized,
		"outcome":              string(project.Outcome),
		"total_raised_compact": format.ToCompact(project.TotalRaised.Big()),
	}, nil
}
