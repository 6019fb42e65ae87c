package requestid

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Strategy names an identifier generation scheme.
type Strategy string

const (
	// StrategyCounter issues strictly increasing numbers scoped to the process lifetime.
	StrategyCounter Strategy = "counter"
	// StrategyRandom issues version 4 UUIDs. Uniqueness is probabilistic.
	StrategyRandom Strategy = "random"
	// StrategyCustom labels generators that are neither Counter nor Random.
	StrategyCustom Strategy = "custom"
)

// ParseStrategy converts a configuration value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyCounter:
		return StrategyCounter, nil
	case StrategyRandom:
		return StrategyRandom, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Generator produces request identifiers.
// Implementations must be safe for concurrent use and must not block.
type Generator interface {
	Next() (ID, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func() (ID, error)

func (f GeneratorFunc) Next() (ID, error) { return f() }

// NewGenerator returns the generator for the given strategy.
// StrategyCounter always resolves to the process-wide counter.
func NewGenerator(s Strategy) (Generator, error) {
	switch s {
	case StrategyCounter:
		return DefaultCounter(), nil
	case StrategyRandom:
		return NewRandom(nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// StrategyOf reports the strategy label of g.
func StrategyOf(g Generator) Strategy {
	switch g.(type) {
	case *Counter:
		return StrategyCounter
	case *Random:
		return StrategyRandom
	default:
		return StrategyCustom
	}
}

var processCounter = &Counter{}

// DefaultCounter returns the counter shared by the whole process.
func DefaultCounter() *Counter { return processCounter }

// Counter issues 1, 2, 3, ... with a lock-free compare-and-swap.
// The zero value is ready to use.
type Counter struct {
	last atomic.Uint64
}

// NewCounterFrom returns a counter whose next value is start+1.
func NewCounterFrom(start uint64) *Counter {
	c := &Counter{}
	c.last.Store(start)
	return c
}

// Next returns the next value of the sequence.
// Once math.MaxUint64 has been issued every call fails with ErrGeneratorExhausted.
func (c *Counter) Next() (ID, error) {
	for {
		cur := c.last.Load()
		if cur == math.MaxUint64 {
			return ID{}, ErrGeneratorExhausted
		}
		if c.last.CompareAndSwap(cur, cur+1) {
			return NumericID(cur + 1), nil
		}
	}
}

// Random issues version 4 UUIDs.
type Random struct {
	rand io.Reader
}

// NewRandom returns a Random generator reading from r.
// A nil reader selects crypto/rand.
func NewRandom(r io.Reader) *Random {
	return &Random{rand: r}
}

// Next draws a fresh UUID. Collisions are possible but negligible.
func (g *Random) Next() (ID, error) {
	var (
		u   uuid.UUID
		err error
	)
	if g.rand != nil {
		u, err = uuid.NewRandomFromReader(g.rand)
	} else {
		u, err = uuid.NewRandom()
	}
	if err != nil {
		return ID{}, errors.Join(ErrEntropy, err)
	}
	return TextID(u.String()), nil
}
