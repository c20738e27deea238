package converter

import (
	dto "lion_slot/internal/api/dto/wallet"
	"lion_slot/internal/model"
)

func ToHistoryResponse(h model.History) dto.HistoryResponse {
	transactions := make([]dto.Transaction, len(h.Transactions))
	for i, t := range h.Transactions {
		transactions[i] = dto.Transaction{
			Type:      string(t.Type),
			Amount:    t.Amount,
			Balance:   t.Balance,
			CreatedAt: t.CreatedAt,
		}
	}

	spins := make([]dto.Spin, len(h.Spins))
	for i, s := range h.Spins {
		spins[i] = dto.Spin{
			Wager:     s.Wager,
			Prize:     s.Prize,
			Profit:    s.Profit,
			Symbols:   append([]string(nil), s.Symbols[:]...),
			CreatedAt: s.CreatedAt,
		}
	}

	return dto.HistoryResponse{
		Transactions: transactions,
		Spins:        spins,
	}
}
