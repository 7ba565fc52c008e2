package surface

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/keeper/keeputils"
	"golang.org/x/exp/slices"
)

// ChooseExtent returns the extent the swapchain must be created with. If the presentation engine
// has fixed the extent, CurrentExtent is returned and requested is ignored. Otherwise requested is
// clamped to [MinImageExtent, MaxImageExtent], each dimension independently.
func ChooseExtent(capabilities *Capabilities, requested Extent2D) Extent2D {
	if !capabilities.CurrentExtent.IsUndefined() {
		return capabilities.CurrentExtent
	}

	return Extent2D{
		Width:  keeputils.Clamp(requested.Width, capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width),
		Height: keeputils.Clamp(requested.Height, capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height),
	}
}

// ChooseImageCount requests one image more than the minimum, so the application never has to wait
// on the presentation engine to release an image, but never more than a non-zero MaxImageCount.
func ChooseImageCount(capabilities *Capabilities) (int, error) {
	if capabilities.MaxImageCount != 0 && capabilities.MinImageCount > capabilities.MaxImageCount {
		return 0, errors.Wrapf(ErrConfiguration, "minimum image count %d exceeds maximum image count %d",
			capabilities.MinImageCount, capabilities.MaxImageCount)
	}

	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && imageCount > capabilities.MaxImageCount {
		imageCount = capabilities.MaxImageCount
	}

	return imageCount, nil
}

// ChooseFormat returns preferred if it is one of the available formats, and the first available
// format otherwise
func ChooseFormat(available []Format, preferred Format) (Format, error) {
	if len(available) == 0 {
		return Format{}, ErrNoFormatAvailable
	}

	if slices.Contains(available, preferred) {
		return preferred, nil
	}

	return available[0], nil
}

// ChoosePresentMode returns preferred if it is available, and PresentModeFIFO otherwise. FIFO
// support is required of every conformant implementation, so its absence is reported as ErrConfiguration.
func ChoosePresentMode(available []PresentMode, preferred PresentMode) (PresentMode, error) {
	if len(available) == 0 {
		return PresentModeFIFO, ErrNoPresentModeAvailable
	}

	if slices.Contains(available, preferred) {
		return preferred, nil
	}

	if slices.Contains(available, PresentModeFIFO) {
		return PresentModeFIFO, nil
	}

	return PresentModeFIFO, errors.Wrapf(ErrConfiguration, "present modes %v do not include %s", available, PresentModeFIFO)
}

// ChooseTransform requires the identity transform. There is no fallback.
func ChooseTransform(capabilities *Capabilities) (TransformFlags, error) {
	if capabilities.SupportedTransforms&TransformIdentity == 0 {
		return 0, errors.Wrapf(ErrUnsupportedTransform, "supported transforms: %s", capabilities.SupportedTransforms)
	}

	return TransformIdentity, nil
}

// ChooseCompositeAlpha requires opaque composite alpha. There is no fallback.
func ChooseCompositeAlpha(capabilities *Capabilities) (CompositeAlphaFlags, error) {
	if capabilities.SupportedCompositeAlpha&CompositeAlphaOpaque == 0 {
		return 0, errors.Wrapf(ErrUnsupportedCompositeAlpha, "supported composite alpha: %s", capabilities.SupportedCompositeAlpha)
	}

	return CompositeAlphaOpaque, nil
}

// ChooseTransformAndAlpha runs ChooseTransform and then ChooseCompositeAlpha
func ChooseTransformAndAlpha(capabilities *Capabilities) (TransformFlags, CompositeAlphaFlags, error) {
	transform, err := ChooseTransform(capabilities)
	if err != nil {
		return 0, 0, err
	}

	alpha, err := ChooseCompositeAlpha(capabilities)
	if err != nil {
		return 0, 0, err
	}

	return transform, alpha, nil
}
