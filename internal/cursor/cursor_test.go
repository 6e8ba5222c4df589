package cursor

import (
	"math/rand"
	"testing"
)

func TestUpDownFromUnset(t *testing.T) {
	if i, ok := None().Down(3).Index(); !ok || i != 0 {
		t.Fatalf("Down from unset: expected 0, got %d ok=%v", i, ok)
	}
	if i, ok := None().Up(3).Index(); !ok || i != 0 {
		t.Fatalf("Up from unset: expected 0, got %d ok=%v", i, ok)
	}
	if None().Down(0).IsSet() || None().Up(0).IsSet() {
		t.Fatalf("expected unset cursor over an empty sequence")
	}
}

func TestUpStopsAtZero(t *testing.T) {
	c := At(0).Up(5)
	if i, ok := c.Index(); !ok || i != 0 {
		t.Fatalf("expected cursor to stay at 0, got %d ok=%v", i, ok)
	}
}

func TestDownStopsAtEnd(t *testing.T) {
	c := At(2).Down(3)
	if i, _ := c.Index(); i != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", i)
	}
}

func TestEmptySequenceClears(t *testing.T) {
	if At(4).Down(0).IsSet() {
		t.Fatalf("Down over empty sequence must clear the cursor")
	}
	if At(4).Up(0).IsSet() {
		t.Fatalf("Up over empty sequence must clear the cursor")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name   string
		in     Cursor
		n      int
		want   int
		wantOK bool
	}{
		{"unset stays unset", None(), 4, 0, false},
		{"in range untouched", At(1), 4, 1, true},
		{"shrunk sequence", At(7), 3, 2, true},
		{"emptied sequence", At(0), 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.in.Clamp(tc.n).Index()
			if ok != tc.wantOK || (ok && got != tc.want) {
				t.Fatalf("Clamp(%d): got %d ok=%v, want %d ok=%v", tc.n, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestRandomWalkStaysInBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		c := None()
		n := r.Intn(6)
		for step := 0; step < 50; step++ {
			switch r.Intn(4) {
			case 0:
				c = c.Up(n)
			case 1:
				c = c.Down(n)
			case 2:
				// The sequence changes size between frames.
				n = r.Intn(6)
				c = c.Clamp(n)
			default:
				c = c.Clamp(n)
			}
			if i, ok := c.Index(); ok && (i < 0 || i >= n) {
				t.Fatalf("trial %d step %d: cursor %d out of bounds for n=%d", trial, step, i, n)
			}
		}
	}
}

func TestGet(t *testing.T) {
	xs := []string{"a", "b"}
	if v, ok := Get(At(1), xs); !ok || v != "b" {
		t.Fatalf("expected b, got %q ok=%v", v, ok)
	}
	if _, ok := Get(At(5), xs); ok {
		t.Fatalf("expected out-of-range Get to fail")
	}
	if _, ok := Get(None(), xs); ok {
		t.Fatalf("expected unset Get to fail")
	}
}
