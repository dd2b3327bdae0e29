package model

import (
	"database/sql/driver"
	"fmt"
	"math/big"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// BigInt 大整数字段类型
// 金额与份额都以最小单位（wei）存储，超出int64范围，数据库中保存为十进制字符串
type BigInt struct {
	big.Int
}

// NewBigInt 从int64创建
func NewBigInt(v int64) BigInt {
	var b BigInt
	b.SetInt64(v)
	return b
}

// NewBigIntFromBig 从*big.Int创建（nil视为0）
func NewBigIntFromBig(v *big.Int) BigInt {
	var b BigInt
	if v != nil {
		b.Set(v)
	}
	return b
}

// ParseBigInt 解析十进制字符串
func ParseBigInt(s string) (BigInt, error) {
	var b BigInt
	if _, ok := b.SetString(s, 10); !ok {
		return BigInt{}, fmt.Errorf("无效的整数: %q", s)
	}
	return b, nil
}

// Big 返回底层*big.Int的副本
func (b *BigInt) Big() *big.Int {
	return new(big.Int).Set(&b.Int)
}

// Value 实现driver.Valuer接口
func (b BigInt) Value() (driver.Value, error) {
	return b.String(), nil
}

// Scan 实现sql.Scanner接口
func (b *BigInt) Scan(value interface{}) error {
	if value == nil {
		b.SetInt64(0)
		return nil
	}
	switch v := value.(type) {
	case int64:
		b.SetInt64(v)
	case []byte:
		if _, ok := b.SetString(string(v), 10); !ok {
			return fmt.Errorf("无法解析数据库中的大整数: %q", string(v))
		}
	case string:
		if _, ok := b.SetString(v, 10); !ok {
			return fmt.Errorf("无法解析数据库中的大整数: %q", v)
		}
	default:
		return fmt.Errorf("不支持的大整数列类型: %T", value)
	}
	return nil
}

// MarshalJSON 序列化为字符串，避免前端丢失精度
func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON 同时接受字符串与数字
func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		b.SetInt64(0)
		return nil
	}
	if _, ok := b.SetString(s, 10); !ok {
		return fmt.Errorf("无效的大整数JSON值: %s", string(data))
	}
	return nil
}

// GormDBDataType 按方言选择列类型
func (BigInt) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "numeric(78,0)"
	default:
		return "text"
	}
}
