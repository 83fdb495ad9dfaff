// Package fees holds the platform's fee schedule. Amounts are MZN and
// kept as exact decimals end to end; rounding is a presentation concern.
package fees

import "github.com/shopspring/decimal"

var (
	// Sale platform fee: 8% of the gross amount plus a fixed 8 MZN.
	salePercent = decimal.NewFromFloat(0.08)
	saleFixed   = decimal.NewFromInt(8)

	// Withdrawal fee: fixed 5 MZN plus 2% of the gross amount.
	withdrawalPercent = decimal.NewFromFloat(0.02)
	withdrawalFixed   = decimal.NewFromInt(5)

	// MinWithdrawal is the smallest amount a merchant may withdraw.
	MinWithdrawal = decimal.NewFromInt(200)
)

// SaleFee returns the platform fee retained on a sale.
func SaleFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(salePercent).Add(saleFixed)
}

// WithdrawalFee returns the fee charged on a withdrawal.
func WithdrawalFee(amount decimal.Decimal) decimal.Decimal {
	return withdrawalFixed.Add(amount.Mul(withdrawalPercent))
}

// Net returns the amount remaining after the fee is deducted.
func Net(amount, fee decimal.Decimal) decimal.Decimal {
	return amount.Sub(fee)
}
