package vkng

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/keeper/surface"
)

type fakeSupportSource struct {
	capabilities *khr_surface.SurfaceCapabilities
	formats      []khr_surface.SurfaceFormat
	presentModes []khr_surface.PresentMode

	formatsErr error
}

func (s *fakeSupportSource) PhysicalDeviceSurfaceCapabilities(device core1_0.PhysicalDevice) (*khr_surface.SurfaceCapabilities, common.VkResult, error) {
	return s.capabilities, core1_0.VKSuccess, nil
}

func (s *fakeSupportSource) PhysicalDeviceSurfaceFormats(device core1_0.PhysicalDevice) ([]khr_surface.SurfaceFormat, common.VkResult, error) {
	if s.formatsErr != nil {
		return nil, core1_0.VKErrorDeviceLost, s.formatsErr
	}
	return s.formats, core1_0.VKSuccess, nil
}

func (s *fakeSupportSource) PhysicalDeviceSurfacePresentModes(device core1_0.PhysicalDevice) ([]khr_surface.PresentMode, common.VkResult, error) {
	return s.presentModes, core1_0.VKSuccess, nil
}

func waylandSupportSource() *fakeSupportSource {
	return &fakeSupportSource{
		capabilities: &khr_surface.SurfaceCapabilities{
			MinImageCount:           2,
			MaxImageCount:           0,
			CurrentExtent:           core1_0.Extent2D{Width: -1, Height: -1},
			MinImageExtent:          core1_0.Extent2D{Width: 1, Height: 1},
			MaxImageExtent:          core1_0.Extent2D{Width: 8192, Height: 8192},
			SupportedTransforms:     khr_surface.SurfaceTransformFlags(surface.TransformIdentity),
			CurrentTransform:        khr_surface.SurfaceTransformFlags(surface.TransformIdentity),
			SupportedCompositeAlpha: khr_surface.CompositeAlphaFlags(surface.CompositeAlphaOpaque | surface.CompositeAlphaPreMultiplied),
		},
		formats: []khr_surface.SurfaceFormat{
			{
				Format:     core1_0.Format(surface.PixelFormatB8G8R8A8UNorm),
				ColorSpace: khr_surface.ColorSpace(surface.ColorSpaceSRGBNonlinear),
			},
			{
				Format:     core1_0.Format(surface.PixelFormatB8G8R8A8SRGB),
				ColorSpace: khr_surface.ColorSpace(surface.ColorSpaceSRGBNonlinear),
			},
		},
		presentModes: []khr_surface.PresentMode{
			khr_surface.PresentMode(surface.PresentModeMailbox),
			khr_surface.PresentMode(surface.PresentModeFIFO),
		},
	}
}

func TestQuerySurfaceSupport(t *testing.T) {
	support, res, err := QuerySurfaceSupport(waylandSupportSource(), nil)
	require.NoError(t, err)
	require.Equal(t, core1_0.VKSuccess, res)

	require.Equal(t, &surface.Capabilities{
		MinImageCount:           2,
		MaxImageCount:           0,
		CurrentExtent:           surface.Extent2D{Width: -1, Height: -1},
		MinImageExtent:          surface.Extent2D{Width: 1, Height: 1},
		MaxImageExtent:          surface.Extent2D{Width: 8192, Height: 8192},
		SupportedTransforms:     surface.TransformIdentity,
		CurrentTransform:        surface.TransformIdentity,
		SupportedCompositeAlpha: surface.CompositeAlphaOpaque | surface.CompositeAlphaPreMultiplied,
	}, support.Capabilities)
	require.Equal(t, []surface.Format{
		{Format: surface.PixelFormatB8G8R8A8UNorm, ColorSpace: surface.ColorSpaceSRGBNonlinear},
		{Format: surface.PixelFormatB8G8R8A8SRGB, ColorSpace: surface.ColorSpaceSRGBNonlinear},
	}, support.Formats)
	require.Equal(t, []surface.PresentMode{surface.PresentModeMailbox, surface.PresentModeFIFO}, support.PresentModes)
}

func TestQuerySurfaceSupport_Negotiate(t *testing.T) {
	support, _, err := QuerySurfaceSupport(waylandSupportSource(), nil)
	require.NoError(t, err)

	params, err := surface.NewNegotiator(nil, surface.DefaultPreferences()).Negotiate(support, surface.Extent2D{Width: 640, Height: 480})
	require.NoError(t, err)
	require.Equal(t, surface.Extent2D{Width: 640, Height: 480}, params.Extent)
	require.Equal(t, 3, params.ImageCount)
	require.Equal(t, surface.PixelFormatB8G8R8A8SRGB, params.Format.Format)
	require.Equal(t, surface.PresentModeMailbox, params.PresentMode)
}

func TestQuerySurfaceSupport_Error(t *testing.T) {
	source := waylandSupportSource()
	source.formatsErr = errors.New("surface lost")

	support, res, err := QuerySurfaceSupport(source, nil)
	require.Nil(t, support)
	require.Equal(t, core1_0.VKErrorDeviceLost, res)
	require.EqualError(t, err, "surface lost")
}

func TestConvertCapabilities_Nil(t *testing.T) {
	require.Nil(t, ConvertCapabilities(nil))
	require.Empty(t, ConvertFormats(nil))
	require.Empty(t, ConvertPresentModes(nil))
}
