package converter

import (
	dto "lion_slot/internal/api/dto/slot"
	"lion_slot/internal/model"
)

func ToSlotSpin(req dto.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		Bet: req.Bet,
	}
}

func ToSpinResponse(round model.SpinRound) dto.SpinResponse {
	symbols := make([]dto.Symbol, 0, len(round.Result.Symbols))
	for _, s := range round.Result.Symbols {
		symbols = append(symbols, toSymbol(s))
	}

	return dto.SpinResponse{
		Symbols: symbols,
		Won:     round.Result.Won,
		Prize:   round.Result.Prize,
		Wager:   round.Wager,
		Profit:  round.Result.Prize.Sub(round.Wager),
		Balance: round.Balance,
	}
}

func ToPayTableResponse(lines []model.PayLine) []dto.PayLine {
	result := make([]dto.PayLine, len(lines))
	for i, l := range lines {
		result[i] = dto.PayLine{
			Symbol:   toSymbol(l.Symbol),
			Pair:     l.Pair,
			PairWild: l.PairWild,
			Triple:   l.Triple,
		}
	}
	return result
}

func ToStatsResponse(stats model.SlotStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalSpins:  stats.TotalSpins,
		TotalBet:    stats.TotalBet,
		TotalPayout: stats.TotalPayout,
		CurrentRTP:  stats.CurrentRTP,
		TargetRTP:   stats.TargetRTP,
		WindowRTP:   stats.WindowRTP,
		WindowSize:  stats.WindowSize,
		Drifting:    stats.Drifting,
	}
}

func toSymbol(s model.Symbol) dto.Symbol {
	return dto.Symbol{
		Name:  s.Name,
		Glyph: s.Glyph,
		Wild:  s.Wild,
	}
}
