package slot

import (
	"fmt"

	"lion_slot/internal/model"

	"github.com/shopspring/decimal"
)

// Имена символов автомата
const (
	Cherry     = "Cereja"
	Lemon      = "Limão"
	Orange     = "Laranja"
	Grape      = "Uva"
	Watermelon = "Melancia"
	Bell       = "Sino"
	Star       = "Estrela"
	Lion       = "Leão"
	Diamond    = "Diamante"
)

// symbols фиксированный набор символов. Порядок задаёт порядок популяции
var symbols = []model.Symbol{
	{Name: Cherry, Glyph: "🍒", Multiplier: decimal.NewFromFloat(2.0)},
	{Name: Lemon, Glyph: "🍋", Multiplier: decimal.NewFromFloat(2.5)},
	{Name: Orange, Glyph: "🍊", Multiplier: decimal.NewFromFloat(3.0)},
	{Name: Grape, Glyph: "🍇", Multiplier: decimal.NewFromFloat(3.5)},
	{Name: Watermelon, Glyph: "🍉", Multiplier: decimal.NewFromFloat(4.0)},
	{Name: Bell, Glyph: "🔔", Multiplier: decimal.NewFromFloat(5.0)},
	{Name: Star, Glyph: "⭐", Multiplier: decimal.NewFromFloat(5.0)},
	{Name: Lion, Glyph: "🦁", Multiplier: decimal.NewFromFloat(20.0), Wild: true},
	{Name: Diamond, Glyph: "💎", Multiplier: decimal.NewFromFloat(50.0)},
}

// DefaultWeights сколько раз каждый символ лежит на барабане.
// Обычные по 2, Leão 4, Diamante 1
func DefaultWeights() map[string]int {
	return map[string]int{
		Cherry:     2,
		Lemon:      2,
		Orange:     2,
		Grape:      2,
		Watermelon: 2,
		Bell:       2,
		Star:       2,
		Lion:       4,
		Diamond:    1,
	}
}

// Catalog неизменяемый набор символов и популяция для розыгрыша
type Catalog struct {
	symbols    []model.Symbol
	byName     map[string]model.Symbol
	population []model.Symbol
}

// NewCatalog собирает каталог по весам. nil означает веса по умолчанию.
// Символ, отсутствующий в weights, на барабан не попадает
func NewCatalog(weights map[string]int) (*Catalog, error) {
	if weights == nil {
		weights = DefaultWeights()
	}

	c := &Catalog{
		symbols: append([]model.Symbol(nil), symbols...),
		byName:  make(map[string]model.Symbol, len(symbols)),
	}
	for _, s := range c.symbols {
		c.byName[s.Name] = s
	}

	for name, count := range weights {
		if _, ok := c.byName[name]; !ok {
			return nil, fmt.Errorf("unknown symbol %q", name)
		}
		if count <= 0 {
			return nil, fmt.Errorf("weight of %q must be positive, got %d", name, count)
		}
	}

	// Дублируем символы в порядке каталога, чтобы популяция была детерминированной
	for _, s := range c.symbols {
		for i := 0; i < weights[s.Name]; i++ {
			c.population = append(c.population, s)
		}
	}
	if len(c.population) == 0 {
		return nil, fmt.Errorf("empty reel population")
	}

	return c, nil
}

// MustCatalog каталог по умолчанию
func MustCatalog() *Catalog {
	c, err := NewCatalog(nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Population возвращает копию взвешенной популяции
func (c *Catalog) Population() []model.Symbol {
	return append([]model.Symbol(nil), c.population...)
}

// Symbols возвращает символы без дублей в порядке каталога
func (c *Catalog) Symbols() []model.Symbol {
	return append([]model.Symbol(nil), c.symbols...)
}

func (c *Catalog) Symbol(name string) (model.Symbol, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Weight сколько раз символ встречается в популяции
func (c *Catalog) Weight(name string) int {
	n := 0
	for _, s := range c.population {
		if s.Name == name {
			n++
		}
	}
	return n
}

// PayTable таблица выплат, выведенная из каталога
func (c *Catalog) PayTable() []model.PayLine {
	lines := make([]model.PayLine, 0, len(c.symbols))
	for _, s := range c.symbols {
		lines = append(lines, model.PayLine{
			Symbol:   s,
			Pair:     s.Multiplier.Mul(decimal.NewFromInt(pairFactor)),
			PairWild: s.Multiplier.Mul(decimal.NewFromInt(pairWildFactor)),
			Triple:   s.Multiplier.Mul(decimal.NewFromInt(tripleFactor)),
		})
	}
	return lines
}

// TheoreticalRTP ожидаемый возврат в процентах: полный перебор
// упорядоченных троек с весами популяции
func (c *Catalog) TheoreticalRTP() float64 {
	total := len(c.population)
	if total == 0 {
		return 0
	}

	unit := decimal.NewFromInt(1)
	var expected float64
	for _, a := range c.symbols {
		wa := c.Weight(a.Name)
		if wa == 0 {
			continue
		}
		for _, b := range c.symbols {
			wb := c.Weight(b.Name)
			if wb == 0 {
				continue
			}
			for _, d := range c.symbols {
				wd := c.Weight(d.Name)
				if wd == 0 {
					continue
				}
				won, p := Resolve(a, b, d, unit)
				if !won {
					continue
				}
				expected += float64(wa*wb*wd) * p.InexactFloat64()
			}
		}
	}

	n := float64(total)
	return expected / (n * n * n) * 100
}
