// Package format 大整数金额的无损格式化
// 金额与份额以最小单位（wei）表示，数值可能超出float64安全范围，
// 所有计算只走big.Int整数运算，不经过浮点数
package format

import (
	"fmt"
	"math/big"
)

// EtherDecimals ETH的小数位数
const EtherDecimals = 18

var compactUnits = []struct {
	value  *big.Int
	suffix string
}{
	{big.NewInt(1_000_000_000_000), "T"},
	{big.NewInt(1_000_000_000), "B"},
	{big.NewInt(1_000_000), "M"},
	{big.NewInt(1_000), "K"},
}

var oneHundred = big.NewInt(100)

// ToFixedDecimal 按指定小数位数输出定点十进制表示
// 通过整除与取模拆分整数部分与小数部分，任意数量级下都精确
func ToFixedDecimal(v *big.Int, decimals int) string {
	if v == nil {
		v = new(big.Int)
	}
	if decimals <= 0 {
		return v.String()
	}

	abs := new(big.Int).Abs(v)
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	intPart, fracPart := new(big.Int).QuoRem(abs, pow, new(big.Int))

	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%0*s", sign, intPart.String(), decimals, fracPart.String())
}

// ToCompact 输出K/M/B/T压缩表示
// 选择不超过数值的最大单位，scaled = v*100/unit保留两位小数，
// 千以下返回普通整数
func ToCompact(v *big.Int) string {
	if v == nil || v.Sign() == 0 {
		return "0"
	}

	abs := new(big.Int).Abs(v)
	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}

	for _, unit := range compactUnits {
		if abs.Cmp(unit.value) >= 0 {
			scaled := new(big.Int).Mul(abs, oneHundred)
			scaled.Quo(scaled, unit.value)
			intPart, fracPart := new(big.Int).QuoRem(scaled, oneHundred, new(big.Int))
			return fmt.Sprintf("%s%s.%02d%s", sign, intPart.String(), fracPart.Int64(), unit.suffix)
		}
	}

	return sign + abs.String()
}

// FormatEther 将wei金额输出为18位小数的ETH表示
func FormatEther(wei *big.Int) string {
	return ToFixedDecimal(wei, EtherDecimals)
}
