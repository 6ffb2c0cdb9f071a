package oracle

import (
	"errors"
	"math/big"
	"slices"
	"testing"

	"github.com/agbru/mulcheck/internal/limb"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestToBig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   []limb.Word
		want string
	}{
		{"empty", nil, "0"},
		{"zero limbs", []limb.Word{0, 0}, "0"},
		{"low limb", []limb.Word{15, 0}, "f"},
		{"high limb", []limb.Word{0, 1}, "10000000000000000"},
		{"max", []limb.Word{limb.Max, limb.Max}, "ffffffffffffffffffffffffffffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToBig(tt.in).Text(16); got != tt.want {
				t.Errorf("ToBig(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromBig(t *testing.T) {
	t.Parallel()

	got, err := FromBig(new(big.Int).Lsh(big.NewInt(1), 129), 4)
	if err != nil {
		t.Fatalf("FromBig: %v", err)
	}
	want := []limb.Word{0, 0, 2, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FromBig(2^129, 4) = %v, want %v", got, want)
		}
	}

	if _, err := FromBig(big.NewInt(-1), 2); !errors.Is(err, ErrNegative) {
		t.Errorf("FromBig(-1) error = %v, want ErrNegative", err)
	}
	if _, err := FromBig(new(big.Int).Lsh(big.NewInt(1), 128), 2); !errors.Is(err, ErrTooWide) {
		t.Errorf("FromBig(2^128, 2) error = %v, want ErrTooWide", err)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	o, err := Lookup("big")
	if err != nil {
		t.Fatalf("Lookup(big): %v", err)
	}
	if got := o.Mul(big.NewInt(15), big.NewInt(16)); got.Int64() != 240 {
		t.Errorf("big oracle 15*16 = %s", got)
	}
	if _, err := Lookup("abacus"); err == nil {
		t.Error("Lookup of an unknown oracle should fail")
	}
	if names := Names(); !slices.Contains(names, "big") {
		t.Errorf("Names() = %v, want it to contain big", names)
	}
}

func TestCodec_RoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("FromBig inverts ToBig", prop.ForAll(
		func(x []uint64) bool {
			back, err := FromBig(ToBig(x), len(x))
			if err != nil {
				return false
			}
			for i := range x {
				if back[i] != x[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(4, gen.UInt64()),
	))

	properties.TestingRun(t)
}
