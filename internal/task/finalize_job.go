package task

import (
	"time"

	"github.com/blues/rfs/internal/config"
	"github.com/blues/rfs/internal/ledger"
	"github.com/blues/rfs/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// FinalizeJob 项目终结任务
// 定期扫描已过截止时间的未终结项目并执行终结，
// 达标与否由账本在终结时判定
type FinalizeJob struct {
	ledger *ledger.Ledger
	config *config.Config
}

// NewFinalizeJob 创建项目终结任务
func NewFinalizeJob(l *ledger.Ledger, cfg *config.Config) *FinalizeJob {
	return &FinalizeJob{
		ledger: l,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *FinalizeJob) GetName() string {
	return "project_finalize_sweeper"
}

// GetSchedule 获取调度配置
func (j *FinalizeJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *FinalizeJob) Execute() {
	logger.Info("Starting project finalize sweep")

	projects, err := j.ledger.ListFinalizable()
	if err != nil {
		logger.Error("Failed to fetch finalizable projects: %v", err)
		return
	}

	finalizedCount := 0

	for _, project := range projects {
		finalized, err := j.ledger.Finalize(project.Id)
		if err != nil {
			// 扫描与人工终结可能并发，已终结的项目直接跳过
			logger.Warn("Failed to finalize project %d: %v", project.Id, err)
			continue
		}

		logger.Info("Finalized project %d with outcome %s: raised=%s, goal=%s",
			finalized.Id, finalized.Outcome, finalized.TotalRaised.String(), finalized.GoalAmount.String())
		finalizedCount++
	}

	logger.Info("Project finalize sweep completed. Finalized %d projects", finalizedCount)
}
