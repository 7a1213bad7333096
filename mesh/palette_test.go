package mesh

import (
	"testing"

	"go.viam.com/test"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	test.That(t, p.Len(), test.ShouldEqual, 8)

	t.Run("material zero and unknowns take the fallback entry", func(t *testing.T) {
		fallback := p.Color(0)
		test.That(t, p.Color(-3), test.ShouldResemble, fallback)
		test.That(t, fallback, test.ShouldNotResemble, p.Color(1))
	})

	t.Run("materials cycle through the remaining entries", func(t *testing.T) {
		test.That(t, p.Color(1), test.ShouldNotResemble, p.Color(2))
		test.That(t, p.Color(8), test.ShouldResemble, p.Color(1))
		test.That(t, p.Color(15), test.ShouldResemble, p.Color(1))
		test.That(t, p.Color(9), test.ShouldResemble, p.Color(2))
	})

	t.Run("colors are stable across calls", func(t *testing.T) {
		test.That(t, p.Color(4), test.ShouldResemble, p.Color(4))
	})
}

func TestNewPalette(t *testing.T) {
	t.Run("parses hex entries", func(t *testing.T) {
		p := NewPalette([]string{"#FF0000", "#00FF00"})
		test.That(t, p.Len(), test.ShouldEqual, 2)
		test.That(t, p.Color(0), test.ShouldResemble, RGB{R: 1})
		test.That(t, p.Color(1), test.ShouldResemble, RGB{G: 1})
	})

	t.Run("skips unparseable entries", func(t *testing.T) {
		p := NewPalette([]string{"not a color", "#0000FF"})
		test.That(t, p.Len(), test.ShouldEqual, 1)
		test.That(t, p.Color(0), test.ShouldResemble, RGB{B: 1})
		test.That(t, p.Color(7), test.ShouldResemble, RGB{B: 1})
	})

	t.Run("empty input falls back to gray", func(t *testing.T) {
		p := NewPalette(nil)
		test.That(t, p.Len(), test.ShouldEqual, 1)
		test.That(t, p.Color(0), test.ShouldResemble, RGB{R: .5, G: .5, B: .5})
	})
}
