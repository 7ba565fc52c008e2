package vkng

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/keeper/surface"
)

func negotiatedParams() *surface.SwapchainParams {
	return &surface.SwapchainParams{
		Extent:         surface.Extent2D{Width: 640, Height: 480},
		ImageCount:     3,
		Format:         surface.Format{Format: surface.PixelFormatB8G8R8A8SRGB, ColorSpace: surface.ColorSpaceSRGBNonlinear},
		PresentMode:    surface.PresentModeMailbox,
		PreTransform:   surface.TransformIdentity,
		CompositeAlpha: surface.CompositeAlphaOpaque,
	}
}

func TestSwapchainCreateInfo_SharedQueueFamily(t *testing.T) {
	info := SwapchainCreateInfo(nil, negotiatedParams(), 0, 0, nil)

	require.Equal(t, 3, info.MinImageCount)
	require.Equal(t, core1_0.Format(surface.PixelFormatB8G8R8A8SRGB), info.ImageFormat)
	require.Equal(t, khr_surface.ColorSpace(surface.ColorSpaceSRGBNonlinear), info.ImageColorSpace)
	require.Equal(t, core1_0.Extent2D{Width: 640, Height: 480}, info.ImageExtent)
	require.Equal(t, 1, info.ImageArrayLayers)
	require.Equal(t, khr_surface.PresentMode(surface.PresentModeMailbox), info.PresentMode)
	require.Equal(t, core1_0.SharingModeExclusive, info.ImageSharingMode)
	require.Empty(t, info.QueueFamilyIndices)
	require.True(t, info.Clipped)
}

func TestSwapchainCreateInfo_SeparateQueueFamilies(t *testing.T) {
	info := SwapchainCreateInfo(nil, negotiatedParams(), 0, 2, nil)

	require.Equal(t, core1_0.SharingModeConcurrent, info.ImageSharingMode)
	require.Equal(t, []int{0, 2}, info.QueueFamilyIndices)
}
