package slot

import (
	"math"
	"testing"
)

func TestSeededDrawIsDeterministic(t *testing.T) {
	t.Parallel()

	pop := MustCatalog().Population()
	a, b := NewSeededDraw(42), NewSeededDraw(42)

	for i := 0; i < 1000; i++ {
		ra, rb := DrawReels(a, pop), DrawReels(b, pop)
		for j := range ra {
			if ra[j].Name != rb[j].Name {
				t.Fatalf("draw %d reel %d: %s != %s", i, j, ra[j].Name, rb[j].Name)
			}
		}
	}
}

func TestUniformDrawDistribution(t *testing.T) {
	t.Parallel()

	c := MustCatalog()
	pop := c.Population()
	draw := NewSeededDraw(7)

	const n = 190000
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[draw(pop).Name]++
	}

	for _, s := range c.Symbols() {
		want := float64(c.Weight(s.Name)) / float64(len(pop))
		got := float64(counts[s.Name]) / n
		if math.Abs(got-want) > 0.01 {
			t.Errorf("%s frequency = %.4f, want %.4f", s.Name, got, want)
		}
	}
}

func TestUniformDrawReturnsPopulationMember(t *testing.T) {
	t.Parallel()

	c := MustCatalog()
	pop := c.Population()
	for i := 0; i < 1000; i++ {
		for _, s := range DrawReels(UniformDraw, pop) {
			if _, ok := c.Symbol(s.Name); !ok {
				t.Fatalf("drawn unknown symbol %q", s.Name)
			}
		}
	}
}
