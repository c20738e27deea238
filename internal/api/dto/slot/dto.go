package slot

import "github.com/shopspring/decimal"

type SpinRequest struct {
	Bet decimal.Decimal `json:"bet"` // Ставка (> 0, не больше баланса)
}

type Symbol struct {
	Name  string `json:"name"`  // Имя символа
	Glyph string `json:"glyph"` // Иконка
	Wild  bool   `json:"wild"`  // Джокер
}

type SpinResponse struct {
	Symbols []Symbol        `json:"symbols"` // Символы трёх барабанов
	Won     bool            `json:"won"`     // Есть выигрыш
	Prize   decimal.Decimal `json:"prize"`   // Выплата (0 при проигрыше)
	Wager   decimal.Decimal `json:"wager"`   // Ставка
	Profit  decimal.Decimal `json:"profit"`  // Выплата минус ставка
	Balance decimal.Decimal `json:"balance"` // Баланс после
}

type PayLine struct {
	Symbol   Symbol          `json:"symbol"`
	Pair     decimal.Decimal `json:"pair"`      // x ставки за пару
	PairWild decimal.Decimal `json:"pair_wild"` // x ставки за пару + джокер
	Triple   decimal.Decimal `json:"triple"`    // x ставки за три одинаковых
}

type StatsResponse struct {
	TotalSpins  int     `json:"total_spins"`
	TotalBet    float64 `json:"total_bet"`
	TotalPayout float64 `json:"total_payout"`
	CurrentRTP  float64 `json:"current_rtp"`
	TargetRTP   float64 `json:"target_rtp"`
	WindowRTP   float64 `json:"window_rtp"`
	WindowSize  int     `json:"window_size"`
	Drifting    bool    `json:"drifting"`
}
