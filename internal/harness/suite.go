package harness

import (
	"fmt"

	apperrors "github.com/agbru/mulcheck/internal/errors"
	"github.com/agbru/mulcheck/internal/mpmul"
)

// Kind classifies the vector corpus of a suite.
type Kind string

const (
	KindCurated Kind = "curated"
	KindEdge    Kind = "edge"
	KindRandom  Kind = "random"
	KindCross   Kind = "cross"
)

// Suite is a set of vectors checked with one strategy at one width.
type Suite struct {
	// Name is unique within a run, e.g. "w4/schoolbook/edge".
	Name     string
	Index    int
	Width    int
	Kind     Kind
	Strategy mpmul.Strategy
	// Against, when set, replaces the oracle as the expected value.
	Against mpmul.Strategy
	Vectors []Vector
}

// NewSuite returns an oracle-checked suite.
func NewSuite(n int, kind Kind, s mpmul.Strategy, vectors []Vector) Suite {
	return Suite{
		Name:     fmt.Sprintf("w%d/%s/%s", n, s.Name(), kind),
		Width:    n,
		Kind:     kind,
		Strategy: s,
		Vectors:  vectors,
	}
}

// NewCrossSuite returns a suite checking s against reference directly.
func NewCrossSuite(n int, s, reference mpmul.Strategy, vectors []Vector) Suite {
	return Suite{
		Name:     fmt.Sprintf("w%d/%s~%s/%s", n, s.Name(), reference.Name(), KindCross),
		Width:    n,
		Kind:     KindCross,
		Strategy: s,
		Against:  reference,
		Vectors:  vectors,
	}
}

// PlanConfig selects the suites of a run.
type PlanConfig struct {
	Widths []int
	// Strategy is "auto", "all" or a registered strategy name.
	Strategy    string
	RandomCount int
	Seed        uint64
}

// Plan expands cfg into the ordered suites of a run. Every requested width
// gets curated, edge and random suites for each selected strategy that
// supports it. Width 2 additionally gets a fixed4 against schoolbook cross
// suite over the whole corpus.
func Plan(cfg PlanConfig) ([]Suite, error) {
	if len(cfg.Widths) == 0 {
		return nil, apperrors.NewConfigError("no operand widths selected")
	}

	var suites []Suite
	for _, n := range cfg.Widths {
		if n < 1 {
			return nil, apperrors.NewConfigError("invalid operand width %d", n)
		}
		strategies, err := strategiesFor(cfg.Strategy, n)
		if err != nil {
			return nil, err
		}

		curated, edge := CuratedVectors(n), EdgeVectors(n)
		random := RandomVectors(n, cfg.RandomCount, cfg.Seed)
		for _, s := range strategies {
			suites = append(suites,
				NewSuite(n, KindCurated, s, curated),
				NewSuite(n, KindEdge, s, edge),
			)
			if len(random) > 0 {
				suites = append(suites, NewSuite(n, KindRandom, s, random))
			}
		}

		if n == 2 {
			all := make([]Vector, 0, len(curated)+len(edge)+len(random))
			all = append(append(append(all, curated...), edge...), random...)
			suites = append(suites, NewCrossSuite(n, mpmul.FixedFour{}, mpmul.Schoolbook{}, all))
		}
	}

	if len(suites) == 0 {
		return nil, apperrors.NewConfigError("strategy %q supports none of the widths %v", cfg.Strategy, cfg.Widths)
	}
	for i := range suites {
		suites[i].Index = i
	}
	return suites, nil
}

func strategiesFor(name string, n int) ([]mpmul.Strategy, error) {
	switch name {
	case "", "auto":
		return []mpmul.Strategy{mpmul.Auto(n)}, nil
	case "all":
		var out []mpmul.Strategy
		for _, key := range mpmul.Strategies() {
			if s, _ := mpmul.Lookup(key); s.Supports(n) {
				out = append(out, s)
			}
		}
		return out, nil
	}
	s, err := mpmul.Lookup(name)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	if !s.Supports(n) {
		return nil, nil
	}
	return []mpmul.Strategy{s}, nil
}
