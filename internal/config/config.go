package config

import (
	"math/big"

	"github.com/blues/rfs/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Task     TaskConfig     `mapstructure:"task"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ChainConfig 链配置
type ChainConfig struct {
	ChainId       int64  `mapstructure:"chain_id"`      // 链ID
	RpcUrl        string `mapstructure:"rpc_url"`       // RPC节点URL
	PrivateKey    string `mapstructure:"private_key"`   // 私钥
	Confirmations int    `mapstructure:"confirmations"` // 交易确认块数
	Enabled       bool   `mapstructure:"enabled"`       // 是否启用链上支付
}

// LedgerConfig 账本配置
type LedgerConfig struct {
	ShareRate            int64  `mapstructure:"share_rate"`              // 份额发行比例
	InitialSharePriceWei string `mapstructure:"initial_share_price_wei"` // 总份额为0时的初始份额单价（wei）
}

// InitialSharePrice 解析初始份额单价，非法值回退为0
func (l LedgerConfig) InitialSharePrice() *big.Int {
	price, ok := new(big.Int).SetString(l.InitialSharePriceWei, 10)
	if !ok || price.Sign() < 0 {
		return big.NewInt(0)
	}
	return price
}

type TaskConfig struct {
	Interval   int `mapstructure:"interval"`    // 秒
	PayoutPool int `mapstructure:"payout_pool"` // 支付任务协程池大小
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/rfs")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "research_funding")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("chain.chain_id", 11155111)
	viper.SetDefault("chain.confirmations", 12)
	viper.SetDefault("chain.enabled", false)
	viper.SetDefault("ledger.share_rate", 1)
	viper.SetDefault("ledger.initial_share_price_wei", "1000000000000000000")
	viper.SetDefault("task.interval", 60)
	viper.SetDefault("task.payout_pool", 4)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
