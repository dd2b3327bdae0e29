package task

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/blues/rfs/internal/chain"
	"github.com/blues/rfs/internal/config"
	"github.com/blues/rfs/internal/ledger"
	"github.com/blues/rfs/internal/logger"
	"github.com/blues/rfs/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
)

const payoutBatchSize = 100

// PayoutJob 支付处理任务
// 将待处理的提现/退款记录通过链上客户端转账，用协程池并发执行；
// 不同支付记录互不依赖，单条失败不影响其余
type PayoutJob struct {
	ledger *ledger.Ledger
	chain  *chain.Client
	config *config.Config
}

// NewPayoutJob 创建支付处理任务
func NewPayoutJob(l *ledger.Ledger, chainClient *chain.Client, cfg *config.Config) *PayoutJob {
	return &PayoutJob{
		ledger: l,
		chain:  chainClient,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *PayoutJob) GetName() string {
	return "payout_processor"
}

// GetSchedule 获取调度配置
func (j *PayoutJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *PayoutJob) Execute() {
	logger.Info("Starting payout processing task")

	records, err := j.ledger.ListPendingPayouts(payoutBatchSize)
	if err != nil {
		logger.Error("Failed to fetch pending payouts: %v", err)
		return
	}
	if len(records) == 0 {
		return
	}

	poolSize := j.config.Task.PayoutPool
	if poolSize <= 0 {
		poolSize = 4
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		logger.Error("Failed to create payout worker pool: %v", err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range records {
		record := records[i]
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			j.processPayout(record)
		})
		if submitErr != nil {
			wg.Done()
			logger.Error("Failed to submit payout %d to pool: %v", record.Id, submitErr)
		}
	}
	wg.Wait()

	logger.Info("Payout processing task completed. Processed %d records", len(records))
}

// processPayout 执行单条支付
func (j *PayoutJob) processPayout(record model.PayoutRecordModel) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	receipt, err := j.chain.SubmitTransaction(ctx, common.HexToAddress(record.Address), record.Amount.Big(), nil)
	if err != nil {
		// 余额不足与签名拒绝是永久失败，其余链上错误留待下次扫描
		if errors.Is(err, chain.ErrInsufficientFunds) || errors.Is(err, chain.ErrUserRejected) {
			if markErr := j.ledger.MarkPayoutResult(record.Id, "", 0, model.PayoutStatusFailed); markErr != nil {
				logger.Error("Failed to mark payout %d failed: %v", record.Id, markErr)
			}
		}
		logger.Error("Failed to submit payout %d (%s %s wei to %s): %v",
			record.Id, record.Type, record.Amount.String(), record.Address, err)
		return
	}

	err = j.ledger.MarkPayoutResult(record.Id, receipt.TxHash.Hex(), receipt.BlockNumber.Int64(), model.PayoutStatusSuccess)
	if err != nil {
		logger.Error("Failed to mark payout %d success: %v", record.Id, err)
		return
	}

	logger.Info("Payout %d completed: %s %s wei to %s, tx=%s",
		record.Id, record.Type, record.Amount.String(), record.Address, receipt.TxHash.Hex())
}
