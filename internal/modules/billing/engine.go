package billing

import (
	"fmt"
	"math"
	"time"

	"hotelreserve/internal/config"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/modules/tariff"
)

// settlementTolerance forgives floating point dust: a deficit below one
// cent still counts as settled.
const settlementTolerance = 0.01

// Engine aggregates nightly tariffs, ad-hoc charges and service tax into
// the amount owed, and computes cancellation / no-show penalties.
type Engine struct {
	tariff          *tariff.Calculator
	taxRate         float64
	policy          config.CancellationPolicy
	noShowTolerance time.Duration
	cfg             *config.Config
}

func NewEngine(calc *tariff.Calculator, cfg *config.Config) *Engine {
	return &Engine{
		tariff:          calc,
		taxRate:         cfg.ServiceTaxRate,
		policy:          cfg.Cancellation,
		noShowTolerance: cfg.NoShowTolerance,
		cfg:             cfg,
	}
}

// TotalDue sums the tariff of each night in [check-in, check-out) plus
// every charge, then applies the service tax on top of that subtotal.
func (e *Engine) TotalDue(b *domain.Booking, room *domain.Room) float64 {
	subtotal := 0.0
	for night := b.CheckInDate; night.Before(b.CheckOutDate); night = night.AddDate(0, 0, 1) {
		subtotal += e.tariff.NightlyRate(night, room.BaseRate)
	}
	for _, c := range b.Charges {
		subtotal += c.Amount
	}
	return round2(subtotal * (1 + e.taxRate))
}

func (e *Engine) TotalPaid(b *domain.Booking) float64 {
	paid := 0.0
	for _, p := range b.Payments {
		paid += p.Amount
	}
	return round2(paid)
}

func (e *Engine) Outstanding(b *domain.Booking, room *domain.Room) float64 {
	out := e.TotalDue(b, room) - e.TotalPaid(b)
	if out < 0 {
		return 0
	}
	return round2(out)
}

func (e *Engine) IsSettled(b *domain.Booking, room *domain.Room) bool {
	return e.TotalPaid(b) >= e.TotalDue(b, room)-settlementTolerance
}

// CancellationPenalty returns the penalty charge for cancelling at now,
// or ok=false when the cancellation is still inside the free window (or
// the configured fraction yields nothing). The penalty is computed on
// the total as it stands, so the penalty line never feeds its own base.
func (e *Engine) CancellationPenalty(b *domain.Booking, room *domain.Room, now time.Time) (domain.Charge, bool) {
	anchor := e.cfg.CheckInAnchor(b.CheckInDate)
	hoursLeft := anchor.Sub(now).Hours()
	if hoursLeft >= float64(e.policy.FreeCancelHours) {
		return domain.Charge{}, false
	}

	amount := round2(e.TotalDue(b, room) * e.policy.StandardPenalty)
	if amount <= 0 {
		return domain.Charge{}, false
	}
	desc := fmt.Sprintf("cancellation penalty (under %dh notice)", e.policy.FreeCancelHours)
	ch, err := domain.NewCharge(desc, amount)
	if err != nil {
		return domain.Charge{}, false
	}
	return ch, true
}

// NoShowWindowElapsed reports whether the tolerance window past the
// check-in anchor time has run out. Before that, marking a no-show
// needs an explicit force from the caller.
func (e *Engine) NoShowWindowElapsed(b *domain.Booking, now time.Time) bool {
	deadline := e.cfg.CheckInAnchor(b.CheckInDate).Add(e.noShowTolerance)
	return now.After(deadline)
}

// NoShowPenalty is charged regardless of timing once the no-show is
// recorded, typically the full amount.
func (e *Engine) NoShowPenalty(b *domain.Booking, room *domain.Room) (domain.Charge, bool) {
	amount := round2(e.TotalDue(b, room) * e.policy.NoShowPenalty)
	if amount <= 0 {
		return domain.Charge{}, false
	}
	ch, err := domain.NewCharge("no-show penalty", amount)
	if err != nil {
		return domain.Charge{}, false
	}
	return ch, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
