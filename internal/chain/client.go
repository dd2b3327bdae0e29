package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/blues/rfs/internal/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client 钱包/链边界客户端
// 提供账户、余额、交易提交与确认查询，账本核心不直接接触节点
type Client struct {
	client        *ethclient.Client
	privateKey    *ecdsa.PrivateKey
	chainId       *big.Int
	confirmations int
}

func Init(cfg config.ChainConfig) (*Client, error) {
	// 连接以太坊节点
	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum client: %w", err)
	}

	// 解析私钥
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &Client{
		client:        client,
		privateKey:    privateKey,
		chainId:       big.NewInt(cfg.ChainId),
		confirmations: cfg.Confirmations,
	}, nil
}

// CurrentAccount 获取服务账户地址
func (c *Client) CurrentAccount() common.Address {
	return crypto.PubkeyToAddress(c.privateKey.PublicKey)
}

// ChainId 获取链ID
func (c *Client) ChainId() int64 {
	return c.chainId.Int64()
}

// Balance 查询地址余额（wei）
func (c *Client) Balance(ctx context.Context, address common.Address) (*big.Int, error) {
	balance, err := c.client.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", classify(err), err)
	}
	return balance, nil
}

// SubmitTransaction 提交转账交易并等待回执
// 失败按ErrUserRejected / ErrInsufficientFunds / ErrChain分类上抛
func (c *Client) SubmitTransaction(ctx context.Context, to common.Address, value *big.Int, data []byte) (*types.Receipt, error) {
	from := c.CurrentAccount()

	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("%w: 获取nonce失败: %v", classify(err), err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: 获取gas价格失败: %v", classify(err), err)
	}

	gasLimit := uint64(21000)
	if len(data) > 0 {
		gasLimit = 300000
	}

	tx := types.NewTransaction(nonce, to, value, gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(c.chainId), c.privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: 签名失败: %v", ErrChain, err)
	}

	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("%w: %v", classify(err), err)
	}

	return c.waitReceipt(ctx, signedTx.Hash())
}

// waitReceipt 轮询等待交易回执
func (c *Client) waitReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	for {
		receipt, err := c.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: 等待回执超时: %v", ErrChain, ctx.Err())
		case <-time.After(time.Second):
		}
	}
}

// GetLatestBlock 获取最新区块号
func (c *Client) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", classify(err), err)
	}
	return header.Number.Uint64(), nil
}

// IsConfirmed 检查交易是否达到配置的确认块数
func (c *Client) IsConfirmed(ctx context.Context, txHash common.Hash) (bool, error) {
	receipt, err := c.client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return false, fmt.Errorf("%w: %v", classify(err), err)
	}
	if receipt == nil {
		return false, nil
	}

	latestBlock, err := c.GetLatestBlock(ctx)
	if err != nil {
		return false, err
	}

	return latestBlock >= receipt.BlockNumber.Uint64()+uint64(c.confirmations), nil
}
