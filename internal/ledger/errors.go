package ledger

import (
	"errors"
)

// 账本错误类型
// 调用方通过errors.Is判断错误种类，handler层据此映射HTTP状态码
var (
	ErrInvalidInput     = errors.New("参数无效")
	ErrNotFound         = errors.New("项目不存在")
	ErrFinalized        = errors.New("项目已终结")
	ErrNotFinalized     = errors.New("项目尚未终结")
	ErrExpired          = errors.New("项目已过截止时间")
	ErrNotYetEligible   = errors.New("项目尚不满足终结条件")
	ErrUnauthorized     = errors.New("无权执行此操作")
	ErrGoalNotMet       = errors.New("项目未达标，资金不可提现")
	ErrGoalMet          = errors.New("项目已达标，不适用退款")
	ErrAlreadyWithdrawn = errors.New("项目资金已提现")
	ErrAlreadyRefunded  = errors.New("该地址已退款")
)
