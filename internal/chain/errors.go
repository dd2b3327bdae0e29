package chain

import (
	"errors"
	"strings"
)

// 链层错误类型
// 来自钱包/链边界的失败原样上抛，核心账本不做自动重试
var (
	ErrUserRejected      = errors.New("交易被签名方拒绝")
	ErrInsufficientFunds = errors.New("账户余额不足")
	ErrChain             = errors.New("链上调用失败")
)

// classify 将节点返回的错误归类为边界错误类型
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return ErrInsufficientFunds
	case strings.Contains(msg, "user denied"), strings.Contains(msg, "user rejected"):
		return ErrUserRejected
	default:
		return ErrChain
	}
}
