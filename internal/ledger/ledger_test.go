package ledger_test

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/blues/rfs/internal/database"
	"github.com/blues/rfs/internal/ledger"
	"github.com/blues/rfs/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var baseTime = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

const day = int64(24 * 60 * 60)

// newTestLedger 基于内存sqlite创建账本，时钟固定为baseTime
func newTestLedger(t *testing.T, cfg ledger.Config) *ledger.Ledger {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	l := ledger.New(db, cfg)
	l.Now = func() time.Time { return baseTime }
	return l
}

// eth n个ETH对应的wei数
func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000_000_000_000))
}

func TestCreateProjectValidation(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	tests := []struct {
		name     string
		title    string
		owner    string
		goal     *big.Int
		duration int64
	}{
		{"空标题", "", "0xowner", eth(10), 7 * day},
		{"空创建者", "量子计算研究", "", eth(10), 7 * day},
		{"目标金额为0", "量子计算研究", "0xowner", big.NewInt(0), 7 * day},
		{"目标金额为负", "量子计算研究", "0xowner", big.NewInt(-1), 7 * day},
		{"时长为0", "量子计算研究", "0xowner", eth(10), 0},
		{"目标金额缺失", "量子计算研究", "0xowner", nil, 7 * day},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.CreateProject(tt.title, tt.owner, tt.goal, tt.duration, nil)
			assert.ErrorIs(t, err, ledger.ErrInvalidInput)
		})
	}
}

func TestCreateProjectSequentialIds(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	first, err := l.CreateProject("量子计算研究", "0xowner1", eth(10), 7*day, nil)
	require.NoError(t, err)
	second, err := l.CreateProject("新材料实验", "0xowner2", eth(20), 14*day, nil)
	require.NoError(t, err)

	// id从1开始顺序分配
	assert.Equal(t, int64(1), first.Id)
	assert.Equal(t, int64(2), second.Id)

	assert.Equal(t, baseTime.Add(time.Duration(7*day)*time.Second), first.Deadline)
	assert.Equal(t, "0", first.TotalRaised.String())
	assert.Equal(t, "0", first.TotalShares.String())
	assert.Equal(t, "0", first.Valuation.String())
	assert.False(t, first.Finalized)
}

func TestCreateProjectInitialValuation(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, eth(100))
	require.NoError(t, err)
	assert.Equal(t, eth(100).String(), project.Valuation.String())
}

func TestContributeAccumulates(t *testing.T) {
	// 份额比例为2，验证 shares = amount * rate
	l := newTestLedger(t, ledger.Config{ShareRate: 2})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)

	record, err := l.Contribute(project.Id, "0xalice", eth(3))
	require.NoError(t, err)
	assert.Equal(t, eth(3).String(), record.AmountContributed.String())
	assert.Equal(t, eth(6).String(), record.SharesHeld.String())

	// 同一地址再次贡献，记录累计而不是新建
	record, err = l.Contribute(project.Id, "0xalice", eth(2))
	require.NoError(t, err)
	assert.Equal(t, eth(5).String(), record.AmountContributed.String())
	assert.Equal(t, eth(10).String(), record.SharesHeld.String())

	_, err = l.Contribute(project.Id, "0xbob", eth(1))
	require.NoError(t, err)

	updated, err := l.GetProject(project.Id)
	require.NoError(t, err)
	assert.Equal(t, eth(6).String(), updated.TotalRaised.String())
	assert.Equal(t, eth(12).String(), updated.TotalShares.String())

	// 每次贡献追加一条流水
	logs, total, err := l.GetContributionLogs(project.Id, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 3)
}

func TestContributeBeyondInt64(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("大额项目", "0xowner", eth(1000), 7*day, nil)
	require.NoError(t, err)

	// 超过int64范围的金额
	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	_, err = l.Contribute(project.Id, "0xwhale", huge)
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xwhale", huge)
	require.NoError(t, err)

	updated, err := l.GetProject(project.Id)
	require.NoError(t, err)
	want := new(big.Int).Lsh(big.NewInt(1), 71)
	assert.Equal(t, want.String(), updated.TotalRaised.String())
	assert.Equal(t, want.String(), updated.TotalShares.String())
}

func TestContributeErrors(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)

	t.Run("项目不存在", func(t *testing.T) {
		_, err := l.Contribute(999, "0xalice", eth(1))
		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})

	t.Run("金额为0", func(t *testing.T) {
		_, err := l.Contribute(project.Id, "0xalice", big.NewInt(0))
		assert.ErrorIs(t, err, ledger.ErrInvalidInput)
	})

	t.Run("金额为负", func(t *testing.T) {
		_, err := l.Contribute(project.Id, "0xalice", big.NewInt(-5))
		assert.ErrorIs(t, err, ledger.ErrInvalidInput)
	})

	t.Run("已过截止时间", func(t *testing.T) {
		l.Now = func() time.Time { return baseTime.Add(time.Duration(7*day)*time.Second + time.Second) }
		defer func() { l.Now = func() time.Time { return baseTime } }()

		_, err := l.Contribute(project.Id, "0xalice", eth(1))
		assert.ErrorIs(t, err, ledger.ErrExpired)

		// 失败不改变任何状态
		unchanged, err := l.GetProject(project.Id)
		require.NoError(t, err)
		assert.Equal(t, "0", unchanged.TotalRaised.String())
	})

	t.Run("截止时间整点视为过期", func(t *testing.T) {
		l.Now = func() time.Time { return baseTime.Add(time.Duration(7*day) * time.Second) }
		defer func() { l.Now = func() time.Time { return baseTime } }()

		_, err := l.Contribute(project.Id, "0xalice", eth(1))
		assert.ErrorIs(t, err, ledger.ErrExpired)
	})
}

func TestContributeFinalizedProject(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xalice", eth(10))
	require.NoError(t, err)

	_, err = l.Finalize(project.Id)
	require.NoError(t, err)

	_, err = l.Contribute(project.Id, "0xbob", eth(1))
	assert.ErrorIs(t, err, ledger.ErrFinalized)

	unchanged, err := l.GetProject(project.Id)
	require.NoError(t, err)
	assert.Equal(t, eth(10).String(), unchanged.TotalRaised.String())
}

func TestUpdateValuation(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)

	t.Run("创建者可更新", func(t *testing.T) {
		updated, err := l.UpdateValuation(project.Id, "0xowner", eth(50))
		require.NoError(t, err)
		assert.Equal(t, eth(50).String(), updated.Valuation.String())
	})

	t.Run("非创建者拒绝", func(t *testing.T) {
		_, err := l.UpdateValuation(project.Id, "0xmallory", eth(99))
		assert.ErrorIs(t, err, ledger.ErrUnauthorized)
	})

	t.Run("估值必须大于0", func(t *testing.T) {
		_, err := l.UpdateValuation(project.Id, "0xowner", big.NewInt(0))
		assert.ErrorIs(t, err, ledger.ErrInvalidInput)
	})

	t.Run("项目不存在", func(t *testing.T) {
		_, err := l.UpdateValuation(999, "0xowner", eth(1))
		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})

	t.Run("已终结项目拒绝", func(t *testing.T) {
		_, err := l.Contribute(project.Id, "0xalice", eth(10))
		require.NoError(t, err)
		_, err = l.Finalize(project.Id)
		require.NoError(t, err)

		_, err = l.UpdateValuation(project.Id, "0xowner", eth(60))
		assert.ErrorIs(t, err, ledger.ErrFinalized)
	})
}

func TestFinalizeEligibility(t *testing.T) {
	t.Run("未到期且未达标不可终结", func(t *testing.T) {
		l := newTestLedger(t, ledger.Config{})
		project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
		require.NoError(t, err)
		_, err = l.Contribute(project.Id, "0xalice", eth(3))
		require.NoError(t, err)

		_, err = l.Finalize(project.Id)
		assert.ErrorIs(t, err, ledger.ErrNotYetEligible)
	})

	t.Run("提前达标即可终结为成功", func(t *testing.T) {
		l := newTestLedger(t, ledger.Config{})
		project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
		require.NoError(t, err)
		_, err = l.Contribute(project.Id, "0xalice", eth(10))
		require.NoError(t, err)

		finalized, err := l.Finalize(project.Id)
		require.NoError(t, err)
		assert.True(t, finalized.Finalized)
		assert.Equal(t, model.ProjectOutcomeSuccess, finalized.Outcome)
	})

	t.Run("到期未达标终结为失败", func(t *testing.T) {
		l := newTestLedger(t, ledger.Config{})
		project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
		require.NoError(t, err)
		_, err = l.Contribute(project.Id, "0xalice", eth(3))
		require.NoError(t, err)

		l.Now = func() time.Time { return baseTime.Add(time.Duration(8*day) * time.Second) }
		finalized, err := l.Finalize(project.Id)
		require.NoError(t, err)
		assert.Equal(t, model.ProjectOutcomeFailed, finalized.Outcome)
	})

	t.Run("重复终结报错", func(t *testing.T) {
		l := newTestLedger(t, ledger.Config{})
		project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
		require.NoError(t, err)
		_, err = l.Contribute(project.Id, "0xalice", eth(10))
		require.NoError(t, err)

		_, err = l.Finalize(project.Id)
		require.NoError(t, err)
		_, err = l.Finalize(project.Id)
		assert.ErrorIs(t, err, ledger.ErrFinalized)
	})

	t.Run("项目不存在", func(t *testing.T) {
		l := newTestLedger(t, ledger.Config{})
		_, err := l.Finalize(999)
		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})
}

func TestWithdraw(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xalice", eth(3))
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xbob", eth(7))
	require.NoError(t, err)

	t.Run("未终结不可提现", func(t *testing.T) {
		_, err := l.Withdraw(project.Id, "0xowner")
		assert.ErrorIs(t, err, ledger.ErrNotFinalized)
	})

	_, err = l.Finalize(project.Id)
	require.NoError(t, err)

	t.Run("非创建者拒绝", func(t *testing.T) {
		_, err := l.Withdraw(project.Id, "0xalice")
		assert.ErrorIs(t, err, ledger.ErrUnauthorized)
	})

	t.Run("创建者提现一次", func(t *testing.T) {
		payout, err := l.Withdraw(project.Id, "0xowner")
		require.NoError(t, err)
		assert.Equal(t, model.PayoutTypeWithdraw, payout.Type)
		assert.Equal(t, eth(10).String(), payout.Amount.String())
		assert.Equal(t, "0xowner", payout.Address)
	})

	t.Run("重复提现拒绝", func(t *testing.T) {
		_, err := l.Withdraw(project.Id, "0xowner")
		assert.ErrorIs(t, err, ledger.ErrAlreadyWithdrawn)
	})
}

func TestWithdrawGoalNotMet(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xalice", eth(3))
	require.NoError(t, err)

	l.Now = func() time.Time { return baseTime.Add(time.Duration(8*day) * time.Second) }
	_, err = l.Finalize(project.Id)
	require.NoError(t, err)

	// 未达标项目走退款，创建者不可提现
	_, err = l.Withdraw(project.Id, "0xowner")
	assert.ErrorIs(t, err, ledger.ErrGoalNotMet)
}

func TestRefund(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xalice", eth(2))
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xalice", eth(1))
	require.NoError(t, err)

	t.Run("未终结不可退款", func(t *testing.T) {
		_, err := l.Refund(project.Id, "0xalice")
		assert.ErrorIs(t, err, ledger.ErrNotFinalized)
	})

	l.Now = func() time.Time { return baseTime.Add(time.Duration(8*day) * time.Second) }
	_, err = l.Finalize(project.Id)
	require.NoError(t, err)

	t.Run("非贡献者拒绝", func(t *testing.T) {
		_, err := l.Refund(project.Id, "0xmallory")
		assert.ErrorIs(t, err, ledger.ErrUnauthorized)
	})

	t.Run("退款金额为累计贡献", func(t *testing.T) {
		payout, err := l.Refund(project.Id, "0xalice")
		require.NoError(t, err)
		assert.Equal(t, model.PayoutTypeRefund, payout.Type)
		assert.Equal(t, eth(3).String(), payout.Amount.String())
	})

	t.Run("重复退款拒绝", func(t *testing.T) {
		_, err := l.Refund(project.Id, "0xalice")
		assert.ErrorIs(t, err, ledger.ErrAlreadyRefunded)
	})
}

func TestRefundMultipleContributors(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(100), 7*day, nil)
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xalice", eth(10))
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xbob", eth(20))
	require.NoError(t, err)

	l.Now = func() time.Time { return baseTime.Add(time.Duration(8*day) * time.Second) }
	_, err = l.Finalize(project.Id)
	require.NoError(t, err)

	// 未达标项目每个贡献地址都可退款，互不影响
	payout, err := l.Refund(project.Id, "0xalice")
	require.NoError(t, err)
	assert.Equal(t, eth(10).String(), payout.Amount.String())

	payout, err = l.Refund(project.Id, "0xbob")
	require.NoError(t, err)
	assert.Equal(t, eth(20).String(), payout.Amount.String())

	pending, err := l.ListPendingPayouts(10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, record := range pending {
		assert.Equal(t, model.PayoutTypeRefund, record.Type)
		assert.Equal(t, model.PayoutStatusPending, record.Status)
	}
}

func TestPendingPayoutsAcrossProjects(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	success, err := l.CreateProject("量子计算研究", "0xowner", eth(5), 7*day, nil)
	require.NoError(t, err)
	_, err = l.Contribute(success.Id, "0xalice", eth(5))
	require.NoError(t, err)

	failed, err := l.CreateProject("脑机接口研究", "0xowner", eth(100), 7*day, nil)
	require.NoError(t, err)
	_, err = l.Contribute(failed.Id, "0xbob", eth(1))
	require.NoError(t, err)

	_, err = l.Finalize(success.Id)
	require.NoError(t, err)
	_, err = l.Withdraw(success.Id, "0xowner")
	require.NoError(t, err)

	// 提现记录尚未上链时，另一个项目的退款照常创建
	l.Now = func() time.Time { return baseTime.Add(time.Duration(8*day) * time.Second) }
	_, err = l.Finalize(failed.Id)
	require.NoError(t, err)
	_, err = l.Refund(failed.Id, "0xbob")
	require.NoError(t, err)

	pending, err := l.ListPendingPayouts(10)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// 上链结果各自落到对应记录
	require.NoError(t, l.MarkPayoutResult(pending[0].Id, "0xtx1", 100, model.PayoutStatusSuccess))
	require.NoError(t, l.MarkPayoutResult(pending[1].Id, "0xtx2", 101, model.PayoutStatusSuccess))
	pending, err = l.ListPendingPayouts(10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRefundGoalMet(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xalice", eth(10))
	require.NoError(t, err)
	_, err = l.Finalize(project.Id)
	require.NoError(t, err)

	_, err = l.Refund(project.Id, "0xalice")
	assert.ErrorIs(t, err, ledger.ErrGoalMet)
}

func TestSharePrice(t *testing.T) {
	l := newTestLedger(t, ledger.Config{InitialSharePrice: big.NewInt(5)})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)

	t.Run("总份额为0返回初始单价", func(t *testing.T) {
		price, err := l.SharePrice(project.Id)
		require.NoError(t, err)
		assert.Equal(t, "5.000000000000000000", price)
	})

	t.Run("估值除以总份额", func(t *testing.T) {
		_, err := l.Contribute(project.Id, "0xalice", big.NewInt(4))
		require.NoError(t, err)
		_, err = l.UpdateValuation(project.Id, "0xowner", big.NewInt(10))
		require.NoError(t, err)

		// 10 / 4 = 2.5，精确到18位小数
		price, err := l.SharePrice(project.Id)
		require.NoError(t, err)
		assert.Equal(t, "2.500000000000000000", price)
	})

	t.Run("项目不存在", func(t *testing.T) {
		_, err := l.SharePrice(999)
		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})
}

func TestHolderShares(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)

	// 无记录返回0
	shares, err := l.HolderShares(project.Id, "0xnobody")
	require.NoError(t, err)
	assert.Equal(t, "0", shares.String())

	_, err = l.Contribute(project.Id, "0xalice", eth(2))
	require.NoError(t, err)

	shares, err = l.HolderShares(project.Id, "0xalice")
	require.NoError(t, err)
	assert.Equal(t, eth(2).String(), shares.String())
}

func TestListProjectsOrdered(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	for i := 0; i < 5; i++ {
		_, err := l.CreateProject(fmt.Sprintf("项目%d", i+1), "0xowner", eth(10), 7*day, nil)
		require.NoError(t, err)
	}

	projects, err := l.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 5)
	for i, project := range projects {
		assert.Equal(t, int64(i+1), project.Id)
	}
}

func TestConcurrentContributeNoLostUpdates(t *testing.T) {
	l := newTestLedger(t, ledger.Config{ShareRate: 3})

	project, err := l.CreateProject("并发项目", "0xowner", eth(1000), 7*day, nil)
	require.NoError(t, err)

	const workers = 25
	amount := eth(1)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := l.Contribute(project.Id, fmt.Sprintf("0xworker%d", n), amount)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	updated, err := l.GetProject(project.Id)
	require.NoError(t, err)

	wantRaised := new(big.Int).Mul(amount, big.NewInt(workers))
	wantShares := new(big.Int).Mul(wantRaised, big.NewInt(3))
	assert.Equal(t, wantRaised.String(), updated.TotalRaised.String())
	assert.Equal(t, wantShares.String(), updated.TotalShares.String())
}

// TestFullLifecycleScenario 完整流程：创建 -> 两人贡献 -> 达标终结 -> 提现
func TestFullLifecycleScenario(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("基因测序研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)

	recordA, err := l.Contribute(project.Id, "0xalice", eth(3))
	require.NoError(t, err)
	recordB, err := l.Contribute(project.Id, "0xbob", eth(7))
	require.NoError(t, err)

	assert.Equal(t, eth(3).String(), recordA.SharesHeld.String())
	assert.Equal(t, eth(7).String(), recordB.SharesHeld.String())

	updated, err := l.GetProject(project.Id)
	require.NoError(t, err)
	assert.Equal(t, eth(10).String(), updated.TotalRaised.String())
	assert.True(t, updated.GoalReached())

	finalized, err := l.Finalize(project.Id)
	require.NoError(t, err)
	assert.Equal(t, model.ProjectOutcomeSuccess, finalized.Outcome)

	payout, err := l.Withdraw(project.Id, "0xowner")
	require.NoError(t, err)
	assert.Equal(t, eth(10).String(), payout.Amount.String())

	_, err = l.Withdraw(project.Id, "0xowner")
	assert.ErrorIs(t, err, ledger.ErrAlreadyWithdrawn)

	// 待处理支付记录可被任务扫描到
	pending, err := l.ListPendingPayouts(10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, model.PayoutTypeWithdraw, pending[0].Type)

	require.NoError(t, l.MarkPayoutResult(pending[0].Id, "0xtxhash", 123, model.PayoutStatusSuccess))
	pending, err = l.ListPendingPayouts(10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestProjectStats(t *testing.T) {
	l := newTestLedger(t, ledger.Config{})

	project, err := l.CreateProject("量子计算研究", "0xowner", eth(10), 7*day, nil)
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xalice", eth(2))
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xalice", eth(1))
	require.NoError(t, err)
	_, err = l.Contribute(project.Id, "0xbob", eth(4))
	require.NoError(t, err)

	stats, err := l.ProjectStats(project.Id)
	require.NoError(t, err)

	assert.Equal(t, eth(7).String(), stats["total_raised"])
	assert.Equal(t, "70.00", stats["progress_percent"])
	assert.Equal(t, int64(2), stats["contributor_count"])
	assert.Equal(t, int64(3), stats["contribution_count"])
}
