package surface

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/keeper/keeputils"
	"golang.org/x/exp/slog"
)

// Preferences are the values a Negotiator picks whenever the surface offers them
type Preferences struct {
	Format      Format
	PresentMode PresentMode
}

// DefaultPreferences prefers 8-bit BGRA sRGB in the sRGB nonlinear color space, and mailbox presentation
func DefaultPreferences() Preferences {
	return Preferences{
		Format: Format{
			Format:     PixelFormatB8G8R8A8SRGB,
			ColorSpace: ColorSpaceSRGBNonlinear,
		},
		PresentMode: PresentModeMailbox,
	}
}

// Negotiator computes swapchain parameters from what a surface supports. It carries no state
// between calls other than its preferences, so it is safe to use from multiple goroutines.
type Negotiator struct {
	logger      *slog.Logger
	preferences Preferences
}

// NewNegotiator creates a Negotiator
//
// logger - Receives the chosen parameters at Debug level. May be nil.
//
// preferences - The format and present mode to choose when available
func NewNegotiator(logger *slog.Logger, preferences Preferences) *Negotiator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Negotiator{
		logger:      logger,
		preferences: preferences,
	}
}

func (n *Negotiator) Preferences() Preferences {
	return n.preferences
}

// Negotiate computes every swapchain creation parameter from support and the size the window
// requests. It should be called once for every swapchain creation or recreation.
func (n *Negotiator) Negotiate(support *SupportDetails, requested Extent2D) (*SwapchainParams, error) {
	if support == nil || support.Capabilities == nil {
		return nil, errors.Wrap(ErrConfiguration, "no surface capabilities were provided")
	}

	caps := support.Capabilities
	err := caps.Validate()
	if err != nil {
		return nil, err
	}

	params := &SwapchainParams{
		Extent: ChooseExtent(caps, requested),
	}

	params.ImageCount, err = ChooseImageCount(caps)
	if err != nil {
		return nil, err
	}

	params.Format, err = ChooseFormat(support.Formats, n.preferences.Format)
	if err != nil {
		return nil, err
	}

	params.PresentMode, err = ChoosePresentMode(support.PresentModes, n.preferences.PresentMode)
	if err != nil {
		return nil, err
	}

	params.PreTransform, params.CompositeAlpha, err = ChooseTransformAndAlpha(caps)
	if err != nil {
		return nil, err
	}

	keeputils.DebugValidate(negotiation{params: params, support: support})

	n.logger.Debug("Negotiator::Negotiate",
		slog.Int("Width", params.Extent.Width),
		slog.Int("Height", params.Extent.Height),
		slog.Int("ImageCount", params.ImageCount),
		slog.String("PresentMode", params.PresentMode.String()),
		slog.Bool("PreferredFormat", params.Format == n.preferences.Format),
	)

	return params, nil
}
