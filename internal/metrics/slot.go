package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const labelOutcome = "outcome"

// Имена метрик: slot_<name>
var (
	rounds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slot_rounds_total",
		Help: "Сыгранные раунды по исходу",
	}, []string{labelOutcome})

	rejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_rounds_rejected_total",
		Help: "Раунды, отклонённые до списания ставки",
	})

	wagered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_wagered_total",
		Help: "Сумма ставок",
	})

	paid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_paid_total",
		Help: "Сумма выплат",
	})

	rtp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slot_rtp_pct",
		Help: "Текущий RTP %",
	})
)

// ObserveRound учитывает завершённый раунд
func ObserveRound(won bool, wager, prize decimal.Decimal) {
	outcome := "lose"
	if won {
		outcome = "win"
	}
	rounds.WithLabelValues(outcome).Inc()
	wagered.Add(wager.InexactFloat64())
	paid.Add(prize.InexactFloat64())
}

func ObserveRejected() {
	rejected.Inc()
}

func SetRTP(pct float64) {
	rtp.Set(pct)
}
