package keeputils

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func CheckRange[T Number](low, high T, name string) error {
	if low > high {
		return cerrors.Wrapf(InvertedRangeError, "%s is [%v, %v]", name, low, high)
	}
	return nil
}

// Clamp returns value limited to [low, high]. If the range is inverted, low wins.
func Clamp[T Number](value, low, high T) T {
	if value > high {
		value = high
	}
	if value < low {
		value = low
	}
	return value
}
