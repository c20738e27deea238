package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"` // Сумма (> 0)
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type Transaction struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

type Spin struct {
	Wager     decimal.Decimal `json:"wager"`
	Prize     decimal.Decimal `json:"prize"`
	Profit    decimal.Decimal `json:"profit"`
	Symbols   []string        `json:"symbols"`
	CreatedAt time.Time       `json:"created_at"`
}

type HistoryResponse struct {
	Transactions []Transaction `json:"transactions"`
	Spins        []Spin        `json:"spins"`
}
