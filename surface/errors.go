package surface

import "github.com/cockroachdb/errors"

var (
	// ErrConfiguration indicates capability data that is contradictory or outside of the platform contract
	ErrConfiguration = errors.New("surface capabilities are inconsistent")
	// ErrNoFormatAvailable indicates that the surface reported no formats
	ErrNoFormatAvailable = errors.New("no surface format is available")
	// ErrNoPresentModeAvailable indicates that the surface reported no present modes
	ErrNoPresentModeAvailable = errors.New("no present mode is available")
	// ErrUnsupportedTransform indicates that the surface does not support the identity transform
	ErrUnsupportedTransform = errors.New("identity surface transform is not supported")
	// ErrUnsupportedCompositeAlpha indicates that the surface does not support opaque composite alpha
	ErrUnsupportedCompositeAlpha = errors.New("opaque composite alpha is not supported")
)
