package task

import (
	"github.com/blues/rfs/internal/chain"
	"github.com/blues/rfs/internal/config"
	"github.com/blues/rfs/internal/ledger"
	"github.com/blues/rfs/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// Job 定时任务接口
type Job interface {
	GetName() string
	GetSchedule() gocron.JobDefinition
	Execute()
}

// Manager 任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	ledger    *ledger.Ledger
	chain     *chain.Client
	config    *config.Config
}

// NewManager 创建新的任务管理器
func NewManager(l *ledger.Ledger, chainClient *chain.Client, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: s,
		ledger:    l,
		chain:     chainClient,
		config:    cfg,
	}
}

// Start 启动任务管理器
func Start(l *ledger.Ledger, chainClient *chain.Client, cfg *config.Config) *Manager {
	manager := NewManager(l, chainClient, cfg)

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	m.registerJob(NewFinalizeJob(m.ledger, m.config))

	// 支付任务依赖链上客户端，链未启用时不注册
	if m.chain != nil {
		m.registerJob(NewPayoutJob(m.ledger, m.chain, m.config))
	} else {
		logger.Warn("Chain client disabled, payout job not registered")
	}
}

func (m *Manager) registerJob(job Job) {
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
