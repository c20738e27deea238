package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionBonus      TransactionType = "bonus"
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionWager      TransactionType = "wager"
	TransactionPrize      TransactionType = "prize"
)

// Transaction запись журнала операций по балансу
type Transaction struct {
	Type      TransactionType
	Amount    decimal.Decimal // Со знаком: списания отрицательные
	Balance   decimal.Decimal // Баланс после операции
	CreatedAt time.Time
}

// SpinRecord запись журнала игр
type SpinRecord struct {
	Wager     decimal.Decimal
	Prize     decimal.Decimal
	Profit    decimal.Decimal // Prize - Wager
	Symbols   [Reels]string
	CreatedAt time.Time
}

type History struct {
	Transactions []Transaction
	Spins        []SpinRecord
}
