package slot

import (
	"math/rand/v2"

	"lion_slot/internal/model"
)

// DrawFunc выбирает один символ из популяции
type DrawFunc func(population []model.Symbol) model.Symbol

// UniformDraw равновероятный выбор с возвращением
func UniformDraw(population []model.Symbol) model.Symbol {
	return population[rand.IntN(len(population))]
}

// NewSeededDraw детерминированный розыгрыш для симуляций и тестов.
// Не потокобезопасен: одна функция на горутину
func NewSeededDraw(seed uint64) DrawFunc {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(population []model.Symbol) model.Symbol {
		return population[r.IntN(len(population))]
	}
}

// DrawReels три независимых вызова draw
func DrawReels(draw DrawFunc, population []model.Symbol) [model.Reels]model.Symbol {
	var out [model.Reels]model.Symbol
	for i := range out {
		out[i] = draw(population)
	}
	return out
}
