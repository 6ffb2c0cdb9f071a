package oracle

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
)

// Oracle computes exact products of non-negative integers.
//
//go:generate mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks
type Oracle interface {
	Name() string
	Mul(a, b *big.Int) *big.Int
}

// Big is the math/big oracle.
type Big struct{}

// Name implements Oracle.
func (Big) Name() string { return "big" }

// Mul implements Oracle. The result is a fresh value.
func (Big) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

var (
	mu       sync.RWMutex
	registry = map[string]Oracle{"big": Big{}}
)

// Register adds o under o.Name(), replacing any oracle of the same name.
func Register(o Oracle) {
	mu.Lock()
	defer mu.Unlock()
	registry[o.Name()] = o
}

// Lookup returns the oracle registered under name.
func Lookup(name string) (Oracle, error) {
	mu.RLock()
	o, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown oracle %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return o, nil
}

// Names returns the registered oracle names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
