// SPDX-License-Identifier: MIT
// Package: lexical/ftoa — internal cross-check: the fast decimal generator
// and the exact big-number generator must agree whenever the fast path
// certifies its digits.

package ftoa

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lexical/core"
)

func TestGrisuDragonAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	certified := 0
	for i := 0; i < 3000; i++ {
		v := math.Float64frombits(rng.Uint64())
		if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
			continue
		}
		bits := math.Float64bits(math.Abs(v))
		_, mant, exp := core.Float64Info.Decompose(bits)

		var gbuf, dbuf [core.MaxFloat64Size]byte
		g := digits{d: gbuf[:]}
		if !grisuShortest(&g, mant, exp, &core.Float64Info) {
			continue
		}
		certified++

		d := digits{d: dbuf[:]}
		dragonShortest(&d, mant, exp, &core.Float64Info, core.DecimalRadix)

		if g.nd != d.nd || g.dp != d.dp || string(g.d[:g.nd]) != string(d.d[:d.nd]) {
			t.Fatalf("value %v: fast %q dp=%d, exact %q dp=%d",
				v, g.d[:g.nd], g.dp, d.d[:d.nd], d.dp)
		}
	}
	// The fast path certifies the vast majority of random inputs; a run
	// where it never fires would make this test vacuous.
	if certified < 2000 {
		t.Fatalf("fast path certified only %d samples", certified)
	}
}

func TestDragonKnownDigits(t *testing.T) {
	cases := []struct {
		v     float64
		radix int
		d     string
		dp    int
	}{
		{1.5, 2, "11", 1},
		{1.5, 10, "15", 1},
		{0.25, 2, "1", -1},
		{255.5, 16, "ff8", 2},
		{80, 3, "2222", 4},
		{1e21, 10, "1", 22},
	}
	for _, c := range cases {
		bits := math.Float64bits(c.v)
		_, mant, exp := core.Float64Info.Decompose(bits)
		var buf [core.MaxFloat64Size]byte
		d := digits{d: buf[:]}
		dragonShortest(&d, mant, exp, &core.Float64Info, c.radix)
		if string(d.d[:d.nd]) != c.d || d.dp != c.dp {
			t.Fatalf("value %v radix %d: got %q dp=%d, want %q dp=%d",
				c.v, c.radix, d.d[:d.nd], d.dp, c.d, c.dp)
		}
	}
}

func TestTrimTrailingZeros(t *testing.T) {
	d := digits{d: []byte("1500"), nd: 4, dp: 4}
	d.trimTrailingZeros()
	if string(d.d[:d.nd]) != "15" || d.dp != 4 {
		t.Fatalf("got %q dp=%d", d.d[:d.nd], d.dp)
	}

	z := digits{d: []byte("000"), nd: 3, dp: 2}
	z.trimTrailingZeros()
	if z.nd != 0 || z.dp != 0 {
		t.Fatalf("all-zero digits not collapsed: nd=%d dp=%d", z.nd, z.dp)
	}
}
