package keeputils

import "github.com/pkg/errors"

// InvertedRangeError is the error returned from CheckRange if the lower bound of a range is greater than its upper bound
var InvertedRangeError error = errors.New("range lower bound must not exceed its upper bound")
