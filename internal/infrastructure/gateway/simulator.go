package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"payeasy.backend/pkg/logger"
	"payeasy.backend/pkg/utils"
)

// SettleFunc is invoked by the simulator when a simulated charge or
// disbursement settles.
type SettleFunc func(ctx context.Context, referenceID uuid.UUID, approved bool)

// Simulator stands in for the wallet gateway in local and test
// environments. Every request is accepted and settles successfully
// after a fixed delay.
type Simulator struct {
	delay    time.Duration
	onCharge SettleFunc
	onPayout SettleFunc
}

// NewSimulator creates a simulated gateway
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// OnChargeSettled registers the callback fired when a charge settles
func (s *Simulator) OnChargeSettled(fn SettleFunc) {
	s.onCharge = fn
}

// OnPayoutSettled registers the callback fired when a payout settles
func (s *Simulator) OnPayoutSettled(fn SettleFunc) {
	s.onPayout = fn
}

// Charge accepts the request and schedules a successful settlement
func (s *Simulator) Charge(ctx context.Context, req ChargeRequest) (*Result, error) {
	logger.Info(ctx, "simulated charge accepted",
		zap.String("sale_id", req.SaleID.String()),
		zap.String("provider", string(req.Provider)),
		zap.String("amount", req.Amount.String()))

	s.settleLater(req.SaleID, s.onCharge)
	return &Result{GatewayRef: simRef(), Accepted: true}, nil
}

// Disburse accepts the request and schedules a successful settlement
func (s *Simulator) Disburse(ctx context.Context, req DisburseRequest) (*Result, error) {
	logger.Info(ctx, "simulated disbursement accepted",
		zap.String("withdrawal_id", req.WithdrawalID.String()),
		zap.String("provider", string(req.Provider)))

	s.settleLater(req.WithdrawalID, s.onPayout)
	return &Result{GatewayRef: simRef(), Accepted: true}, nil
}

func (s *Simulator) settleLater(referenceID uuid.UUID, fn SettleFunc) {
	if fn == nil {
		return
	}
	go func() {
		time.Sleep(s.delay)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		fn(ctx, referenceID, true)
	}()
}

func simRef() string {
	return fmt.Sprintf("SIM-%s", utils.GenerateUUIDv7())
}
