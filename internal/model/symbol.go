package model

import "github.com/shopspring/decimal"

// Symbol символ барабана. Значение неизменяемое, сравнивается по имени
type Symbol struct {
	Name       string          // Уникальное имя символа
	Glyph      string          // Иконка для отображения, в расчётах не участвует
	Multiplier decimal.Decimal // Множитель выплаты (>= 1)
	Wild       bool            // Символ-джокер
}

// BasePrize выплата символа, применённая к ставке один раз
func (s Symbol) BasePrize(wager decimal.Decimal) decimal.Decimal {
	return s.Multiplier.Mul(wager)
}

func (s Symbol) String() string {
	return s.Glyph
}
