package lsg2

import (
	"math/rand"
	"testing"
)

// TestFuzzRandomBytesNeverPanic feeds purely random byte sequences to
// Decode and requires it to return one of the closed error kinds (or,
// vanishingly rarely, succeed outright) without panicking.
func TestFuzzRandomBytesNeverPanic(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		n := r.Intn(256)
		buf := make([]byte, n)
		r.Read(buf)

		func() {
			defer func() {
				if rec := recover(); rec != nil {
					t.Fatalf("iteration %d (len=%d): Decode panicked: %v", i, n, rec)
				}
			}()
			_, err := Decode(buf)
			if err != nil {
				if _, ok := err.(*Error); !ok {
					t.Fatalf("iteration %d: non-nil error is not *lsg2.Error: %v (%T)", i, err, err)
				}
			}
		}()
	}
}

// TestFuzzMutatedValidContainer starts from a real, valid container and
// flips single random bytes, requiring the same never-panic /
// closed-error-kind guarantee.
func TestFuzzMutatedValidContainer(t *testing.T) {
	n := 50
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i%7) - 3
	}
	ts := TimeSeries{Values: x, DT: 1, T0: T0FromNumber(0), Unit: "u"}
	buf, err := Encode(ts, DefaultConfig())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		mutated := append([]byte(nil), buf...)
		idx := r.Intn(len(mutated))
		mutated[idx] ^= byte(1 << uint(r.Intn(8)))

		func() {
			defer func() {
				if rec := recover(); rec != nil {
					t.Fatalf("iteration %d (byte %d): Decode panicked: %v", i, idx, rec)
				}
			}()
			_, err := Decode(mutated)
			if err != nil {
				if _, ok := err.(*Error); !ok {
					t.Fatalf("iteration %d: non-nil error is not *lsg2.Error: %v (%T)", i, err, err)
				}
			}
		}()
	}
}

// TestFuzzTruncatedContainer truncates a valid container to every prefix
// length and requires the same guarantee.
func TestFuzzTruncatedContainer(t *testing.T) {
	n := 30
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	ts := TimeSeries{Values: x, DT: 1, T0: T0FromNumber(0), Unit: "u"}
	buf, err := Encode(ts, DefaultConfig())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	for l := 0; l < len(buf); l++ {
		prefix := buf[:l]
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					t.Fatalf("prefix len %d: Decode panicked: %v", l, rec)
				}
			}()
			_, err := Decode(prefix)
			if err != nil {
				if _, ok := err.(*Error); !ok {
					t.Fatalf("prefix len %d: non-nil error is not *lsg2.Error: %v (%T)", l, err, err)
				}
			}
		}()
	}
}
