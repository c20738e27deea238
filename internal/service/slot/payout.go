package slot

import (
	"lion_slot/internal/model"

	"github.com/shopspring/decimal"
)

// Множители базовой выплаты по правилам
const (
	tripleFactor   = 3
	pairWildFactor = 2
	pairFactor     = 1
)

// Resolve определяет выигрыш для трёх символов.
// Правила проверяются строго по порядку, срабатывает первое:
//  1. три одинаковых имени: база x3
//  2. джокер + пара среди остальных символов: база x2
//  3. любая пара (1-2, 2-3, 1-3): база x1
//
// Ставку проверяет вызывающий код
func Resolve(s1, s2, s3 model.Symbol, wager decimal.Decimal) (bool, decimal.Decimal) {
	// Три одинаковых, в том числе три джокера
	if s1.Name == s2.Name && s2.Name == s3.Name {
		return true, prize(s1, wager, tripleFactor)
	}

	// Пара + джокер
	all := [model.Reels]model.Symbol{s1, s2, s3}
	wilds := 0
	nonWild := make([]model.Symbol, 0, model.Reels)
	for _, s := range all {
		if s.Wild {
			wilds++
			continue
		}
		nonWild = append(nonWild, s)
	}
	if wilds > 0 && len(nonWild) >= 2 && nonWild[0].Name == nonWild[1].Name {
		return true, prize(nonWild[0], wager, pairWildFactor)
	}

	// Обычная пара. Совпадение только по имени
	switch {
	case s1.Name == s2.Name:
		return true, prize(s1, wager, pairFactor)
	case s2.Name == s3.Name:
		return true, prize(s2, wager, pairFactor)
	case s1.Name == s3.Name:
		return true, prize(s1, wager, pairFactor)
	}

	return false, decimal.Zero
}

// ResolveReels Resolve для результата DrawReels
func ResolveReels(reels [model.Reels]model.Symbol, wager decimal.Decimal) model.SpinResult {
	won, p := Resolve(reels[0], reels[1], reels[2], wager)
	return model.SpinResult{
		Symbols: reels,
		Won:     won,
		Prize:   p,
	}
}

func prize(s model.Symbol, wager decimal.Decimal, factor int64) decimal.Decimal {
	return s.BasePrize(wager).Mul(decimal.NewFromInt(factor))
}
