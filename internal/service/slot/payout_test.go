package slot

import (
	"testing"

	"lion_slot/internal/model"

	"github.com/shopspring/decimal"
)

func sym(t *testing.T, c *Catalog, name string) model.Symbol {
	t.Helper()
	s, ok := c.Symbol(name)
	if !ok {
		t.Fatalf("symbol %q not in catalog", name)
	}
	return s
}

func TestResolve(t *testing.T) {
	t.Parallel()

	c := MustCatalog()
	ten := decimal.NewFromInt(10)

	tests := []struct {
		name    string
		reels   [3]string
		wager   decimal.Decimal
		wantWon bool
		want    string
	}{
		{name: "triple cherry", reels: [3]string{Cherry, Cherry, Cherry}, wager: ten, wantWon: true, want: "60"},
		{name: "triple diamond", reels: [3]string{Diamond, Diamond, Diamond}, wager: ten, wantWon: true, want: "1500"},
		{name: "triple wild uses own multiplier", reels: [3]string{Lion, Lion, Lion}, wager: ten, wantWon: true, want: "600"},
		{name: "wild first with pair", reels: [3]string{Lion, Cherry, Cherry}, wager: ten, wantWon: true, want: "40"},
		{name: "wild middle with pair", reels: [3]string{Star, Lion, Star}, wager: ten, wantWon: true, want: "100"},
		{name: "wild last beats plain pair", reels: [3]string{Cherry, Cherry, Lion}, wager: ten, wantWon: true, want: "40"},
		{name: "pair first two", reels: [3]string{Diamond, Diamond, Cherry}, wager: ten, wantWon: true, want: "500"},
		{name: "pair last two", reels: [3]string{Cherry, Grape, Grape}, wager: ten, wantWon: true, want: "35"},
		{name: "pair outer", reels: [3]string{Bell, Cherry, Bell}, wager: ten, wantWon: true, want: "50"},
		{name: "two wilds fall through to wild pair", reels: [3]string{Lion, Lion, Cherry}, wager: ten, wantWon: true, want: "200"},
		{name: "two wilds last", reels: [3]string{Cherry, Lion, Lion}, wager: ten, wantWon: true, want: "200"},
		{name: "two wilds outer", reels: [3]string{Lion, Cherry, Lion}, wager: ten, wantWon: true, want: "200"},
		{name: "wild alone does not pay", reels: [3]string{Lion, Cherry, Lemon}, wager: ten, wantWon: false, want: "0"},
		{name: "no match", reels: [3]string{Cherry, Lemon, Orange}, wager: ten, wantWon: false, want: "0"},
		{name: "fractional multiplier", reels: [3]string{Lemon, Lemon, Cherry}, wager: decimal.RequireFromString("0.01"), wantWon: true, want: "0.025"},
		{name: "fractional wager", reels: [3]string{Watermelon, Watermelon, Watermelon}, wager: decimal.RequireFromString("0.5"), wantWon: true, want: "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			won, prize := Resolve(sym(t, c, tt.reels[0]), sym(t, c, tt.reels[1]), sym(t, c, tt.reels[2]), tt.wager)
			if won != tt.wantWon {
				t.Fatalf("won = %v, want %v", won, tt.wantWon)
			}
			if want := decimal.RequireFromString(tt.want); !prize.Equal(want) {
				t.Fatalf("prize = %s, want %s", prize, want)
			}
		})
	}
}

// Совпадение только по имени: джокер образует обычную пару
// с не-джокером того же имени
func TestResolveWildPairsBySameName(t *testing.T) {
	t.Parallel()

	wildX := model.Symbol{Name: "X", Multiplier: decimal.NewFromInt(20), Wild: true}
	plainX := model.Symbol{Name: "X", Multiplier: decimal.NewFromInt(7)}
	cherry := sym(t, MustCatalog(), Cherry)
	ten := decimal.NewFromInt(10)

	tests := []struct {
		name  string
		reels [3]model.Symbol
		want  string
	}{
		// Пара (1,2), платит первый символ пары - джокер
		{name: "wild then plain first two", reels: [3]model.Symbol{wildX, plainX, cherry}, want: "200"},
		// Пара (1,2), платит не-джокер
		{name: "plain then wild first two", reels: [3]model.Symbol{plainX, wildX, cherry}, want: "70"},
		// Пара (2,3), платит второй символ - джокер
		{name: "wild then plain last two", reels: [3]model.Symbol{cherry, wildX, plainX}, want: "200"},
		// Пара (2,3), платит не-джокер
		{name: "plain then wild last two", reels: [3]model.Symbol{cherry, plainX, wildX}, want: "70"},
		// Пара (1,3)
		{name: "outer pair", reels: [3]model.Symbol{wildX, cherry, plainX}, want: "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			won, prize := Resolve(tt.reels[0], tt.reels[1], tt.reels[2], ten)
			if !won {
				t.Fatal("expected plain pair win")
			}
			if want := decimal.RequireFromString(tt.want); !prize.Equal(want) {
				t.Fatalf("prize = %s, want %s", prize, want)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	t.Parallel()

	c := MustCatalog()
	s1, s2, s3 := sym(t, c, Lion), sym(t, c, Bell), sym(t, c, Bell)
	before := [3]model.Symbol{s1, s2, s3}
	wager := decimal.RequireFromString("2.50")

	won1, p1 := Resolve(s1, s2, s3, wager)
	won2, p2 := Resolve(s1, s2, s3, wager)
	if won1 != won2 || !p1.Equal(p2) {
		t.Fatalf("results differ: (%v, %s) vs (%v, %s)", won1, p1, won2, p2)
	}

	after := [3]model.Symbol{s1, s2, s3}
	for i := range before {
		if before[i].Name != after[i].Name || !before[i].Multiplier.Equal(after[i].Multiplier) || before[i].Wild != after[i].Wild {
			t.Fatalf("symbol %d mutated: %+v -> %+v", i, before[i], after[i])
		}
	}
	if !wager.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("wager mutated: %s", wager)
	}

	// Каталог тоже не меняется
	if got := sym(t, c, Bell); !got.Multiplier.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("catalog multiplier changed: %s", got.Multiplier)
	}
}

func TestResolveWonMatchesPrize(t *testing.T) {
	t.Parallel()

	c := MustCatalog()
	wager := decimal.NewFromInt(3)
	for _, a := range c.Symbols() {
		for _, b := range c.Symbols() {
			for _, d := range c.Symbols() {
				won, prize := Resolve(a, b, d, wager)
				if won && !prize.IsPositive() {
					t.Fatalf("%s %s %s: won with prize %s", a.Name, b.Name, d.Name, prize)
				}
				if !won && !prize.IsZero() {
					t.Fatalf("%s %s %s: lost with prize %s", a.Name, b.Name, d.Name, prize)
				}
			}
		}
	}
}

func TestResolveReels(t *testing.T) {
	t.Parallel()

	c := MustCatalog()
	reels := [model.Reels]model.Symbol{sym(t, c, Orange), sym(t, c, Orange), sym(t, c, Orange)}

	res := ResolveReels(reels, decimal.NewFromInt(1))
	if !res.Won {
		t.Fatal("expected win")
	}
	if !res.Prize.Equal(decimal.NewFromInt(9)) {
		t.Fatalf("prize = %s, want 9", res.Prize)
	}
	if res.Symbols != reels {
		t.Fatalf("symbols = %v, want %v", res.Symbols, reels)
	}
}
