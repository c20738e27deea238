package stats_repo

import (
	"math"
	"sync"

	"lion_slot/internal/model"

	"go.uber.org/zap"
)

const (
	// defaultWindowSize Размер окна последних спинов для анализа RTP
	defaultWindowSize = 500
	// criticalRTPDeviation отклонение RTP окна от теоретического, после которого пишем предупреждение
	criticalRTPDeviation = 10.0
	// normalRTPDeviation отклонение, при котором предупреждение снимается
	normalRTPDeviation = 5.0
)

// Результат спина для окна
type windowSpin struct {
	bet    float64
	payout float64
}

// StateRepo Статистика автомата в памяти процесса
type StateRepo struct {
	mtx sync.RWMutex
	log *zap.Logger

	totalSpins  int
	totalBet    float64
	totalPayout float64
	currentRTP  float64
	targetRTP   float64

	window     []windowSpin
	windowSize int
	windowBet  float64
	windowPay  float64
	windowRTP  float64
	drifting   bool
}

// NewSlotStatsRepository targetRTP - теоретический RTP каталога в процентах
func NewSlotStatsRepository(targetRTP float64, windowSize int, log *zap.Logger) *StateRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		log:        log.With(zap.String("component", "repository/stats")),
		targetRTP:  targetRTP,
		windowSize: windowSize,
		window:     make([]windowSpin, 0, windowSize),
	}
}

// CasinoState Возвращает копию текущего состояния
func (r *StateRepo) CasinoState() model.SlotStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.SlotStats{
		TotalSpins:  r.totalSpins,
		TotalBet:    r.totalBet,
		TotalPayout: r.totalPayout,
		CurrentRTP:  r.currentRTP,
		TargetRTP:   r.targetRTP,
		WindowRTP:   r.windowRTP,
		WindowSize:  len(r.window),
		Drifting:    r.drifting,
	}
}

// UpdateState Обновление состояния после спина
func (r *StateRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.totalSpins++
	r.totalBet += bet
	r.totalPayout += payout
	if r.totalBet > 0 {
		r.currentRTP = r.totalPayout / r.totalBet * 100
	}

	// Добавляем спин в окно, вытесняя самый старый
	r.window = append(r.window, windowSpin{bet: bet, payout: payout})
	r.windowBet += bet
	r.windowPay += payout
	if len(r.window) > r.windowSize {
		old := r.window[0]
		r.window = r.window[1:]
		r.windowBet -= old.bet
		r.windowPay -= old.payout
	}

	if r.windowBet > 0 {
		r.windowRTP = r.windowPay / r.windowBet * 100
	} else {
		r.windowRTP = 0
	}

	r.checkDrift()
}

// checkDrift сравнивает RTP полного окна с теоретическим
func (r *StateRepo) checkDrift() {
	if len(r.window) < r.windowSize {
		return
	}

	diff := math.Abs(r.windowRTP - r.targetRTP)
	switch {
	case !r.drifting && diff > criticalRTPDeviation:
		r.drifting = true
		r.log.Warn("window RTP drifted from target",
			zap.Float64("window_rtp", r.windowRTP),
			zap.Float64("target_rtp", r.targetRTP),
			zap.Int("total_spins", r.totalSpins),
		)
	case r.drifting && diff < normalRTPDeviation:
		r.drifting = false
		r.log.Info("window RTP back to normal",
			zap.Float64("window_rtp", r.windowRTP),
			zap.Float64("target_rtp", r.targetRTP),
		)
	}
}
