package model

import "github.com/shopspring/decimal"

// Количество барабанов автомата
const Reels = 3

type SlotSpin struct {
	Bet decimal.Decimal
}

// SpinResult результат одного розыгрыша. В хранилище не пишется целиком
type SpinResult struct {
	Symbols [Reels]Symbol
	Won     bool
	Prize   decimal.Decimal
}

// SpinRound результат раунда вместе с балансом после расчёта
type SpinRound struct {
	Result  SpinResult
	Wager   decimal.Decimal
	Balance decimal.Decimal
}

// PayLine строка таблицы выплат для одного символа
type PayLine struct {
	Symbol   Symbol
	Pair     decimal.Decimal // Множитель ставки за пару
	PairWild decimal.Decimal // Множитель ставки за пару + джокер
	Triple   decimal.Decimal // Множитель ставки за три одинаковых
}

// SlotStats статистика автомата для API
type SlotStats struct {
	TotalSpins  int
	TotalBet    float64
	TotalPayout float64
	CurrentRTP  float64
	TargetRTP   float64 // Теоретический RTP каталога
	WindowRTP   float64
	WindowSize  int
	Drifting    bool // RTP окна сильно отклонился от теоретического
}
