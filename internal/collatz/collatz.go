// Package collatz turns Collatz sequences into turtle-walk line segments.
package collatz

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/iburimskiy/collatz-visualization/internal/config"
)

// ErrArithmeticOverflow is returned when 3n+1 does not fit in an int64.
var ErrArithmeticOverflow = errors.New("arithmetic overflow")

// maxOddInput is the largest odd n for which 3n+1 fits in an int64.
const maxOddInput = (math.MaxInt64 - 1) / 3

// Step applies one Collatz iteration. Odd values take 3n+1 and the division
// by two it guarantees in a single step.
func Step(n int64) (next int64, odd bool, err error) {
	if n%2 == 0 {
		return n / 2, false, nil
	}
	if n > maxOddInput {
		return n, true, errors.Wrapf(ErrArithmeticOverflow, "3n+1 for n=%d", n)
	}
	return (3*n + 1) / 2, true, nil
}

// Batch returns the starting values for one frame.
func Batch(s config.Snapshot, rng *rand.Rand) ([]int64, error) {
	if s.StartValue < 1 {
		return nil, errors.Wrapf(config.ErrInvalidConfiguration, "start value %d must be positive", s.StartValue)
	}
	if s.Repetitions < 0 {
		return nil, errors.Wrapf(config.ErrInvalidConfiguration, "repetitions %d must not be negative", s.Repetitions)
	}

	values := make([]int64, 0, s.Repetitions)
	if !s.RandomStarts {
		for i := int64(0); i < s.Repetitions; i++ {
			values = append(values, s.StartValue+i)
		}
		return values, nil
	}

	if s.StartValue > math.MaxInt64/config.RandomSpan {
		return nil, errors.Wrapf(config.ErrInvalidConfiguration, "start value %d too large for random range", s.StartValue)
	}
	span := s.StartValue*config.RandomSpan - s.StartValue
	for i := int64(0); i < s.Repetitions; i++ {
		values = append(values, s.StartValue+rng.Int63n(span))
	}
	return values, nil
}
