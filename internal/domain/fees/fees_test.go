package fees_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"payeasy.backend/internal/domain/fees"
)

func TestSaleFee(t *testing.T) {
	// 1000 * 0.08 + 8 = 88
	fee := fees.SaleFee(decimal.NewFromInt(1000))
	assert.True(t, fee.Equal(decimal.NewFromInt(88)), "got %s", fee)

	net := fees.Net(decimal.NewFromInt(1000), fee)
	assert.True(t, net.Equal(decimal.NewFromInt(912)), "got %s", net)
}

func TestWithdrawalFee(t *testing.T) {
	// 5 + 1000 * 0.02 = 25
	fee := fees.WithdrawalFee(decimal.NewFromInt(1000))
	assert.True(t, fee.Equal(decimal.NewFromInt(25)), "got %s", fee)

	net := fees.Net(decimal.NewFromInt(1000), fee)
	assert.True(t, net.Equal(decimal.NewFromInt(975)), "got %s", net)
}

func TestFeesKeepFractionalPrecision(t *testing.T) {
	// 250.50 * 0.08 + 8 = 28.04; no internal truncation.
	fee := fees.SaleFee(decimal.RequireFromString("250.50"))
	assert.True(t, fee.Equal(decimal.RequireFromString("28.04")), "got %s", fee)

	// 5 + 333.33 * 0.02 = 11.6666
	wfee := fees.WithdrawalFee(decimal.RequireFromString("333.33"))
	assert.True(t, wfee.Equal(decimal.RequireFromString("11.6666")), "got %s", wfee)
}

func TestMinWithdrawal(t *testing.T) {
	assert.True(t, decimal.NewFromInt(199).LessThan(fees.MinWithdrawal))
	assert.True(t, decimal.NewFromInt(200).GreaterThanOrEqual(fees.MinWithdrawal))
}
