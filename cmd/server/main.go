package main

import (
	"github.com/blues/rfs/internal/chain"
	"github.com/blues/rfs/internal/config"
	"github.com/blues/rfs/internal/database"
	"github.com/blues/rfs/internal/ledger"
	"github.com/blues/rfs/internal/logger"
	"github.com/blues/rfs/internal/router"
	"github.com/blues/rfs/internal/task"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if cfg.Log.Output == "file" {
		fileLogger, err := logger.NewWithFileRotation(logger.ParseLogLevel(cfg.Log.Level), cfg.Log.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(fileLogger)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化账本
	l := ledger.New(db, ledger.Config{
		ShareRate:         cfg.Ledger.ShareRate,
		InitialSharePrice: cfg.Ledger.InitialSharePrice(),
	})

	// 初始化链上客户端（可选）
	var chainClient *chain.Client
	if cfg.Chain.Enabled {
		chainClient, err = chain.Init(cfg.Chain)
		if err != nil {
			logger.Fatal("Failed to initialize chain client: %v", err)
		}
		logger.Info("Chain client initialized: chain_id=%d, account=%s",
			chainClient.ChainId(), chainClient.CurrentAccount().Hex())
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(l)

	// 启动定时任务
	manager := task.Start(l, chainClient, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
