package eth

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// maxFractionDigits caps the fractional part of human readable amounts.
const maxFractionDigits = 6

// FormatUnits renders an integer token amount as a decimal string.
// Exact multiples of one unit render without a decimal point, everything
// else with at most six fractional digits, trailing zeros stripped.
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	if decimals <= 0 {
		return amount.String()
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	quo, rem := new(big.Int).QuoRem(amount, divisor, new(big.Int))

	if rem.Sign() == 0 {
		return quo.String()
	}

	rem.Abs(rem)
	frac := fmt.Sprintf("%0*s", decimals, rem.String())
	if len(frac) > maxFractionDigits {
		frac = frac[:maxFractionDigits]
	}
	frac = strings.TrimRight(frac, "0")

	// amounts below the displayable precision collapse to the integer part
	if frac == "" {
		return quo.String()
	}

	// a negative amount with a zero integer part needs its sign restored,
	// quo carries none in that case
	sign := ""
	if amount.Sign() < 0 && quo.Sign() == 0 {
		sign = "-"
	}

	return sign + quo.String() + "." + frac
}

// FormatEther renders a wei amount in ether.
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, 18)
}

// FormatGwei renders a wei amount in gwei with two fixed decimals.
func FormatGwei(wei *big.Int) string {
	if wei == nil {
		return "0.00"
	}

	return decimal.NewFromBigInt(wei, -9).StringFixed(2)
}
