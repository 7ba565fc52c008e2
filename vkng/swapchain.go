package vkng

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/keeper/surface"
)

// SwapchainCreateInfo fills in a khr_swapchain.SwapchainCreateInfo from negotiated parameters. The
// swapchain is single-layer, clipped, and used as a color attachment. When the graphics and present
// queue families differ, images are shared concurrently between them.
//
// oldSwapchain may be nil. When recreating, it should be the swapchain currently held by the caller's
// owner, which is reset to the new swapchain once creation succeeds.
func SwapchainCreateInfo(
	target khr_surface.Surface,
	params *surface.SwapchainParams,
	graphicsQueueFamily, presentQueueFamily int,
	oldSwapchain khr_swapchain.Swapchain,
) khr_swapchain.SwapchainCreateInfo {
	info := khr_swapchain.SwapchainCreateInfo{
		Surface:          target,
		MinImageCount:    params.ImageCount,
		ImageFormat:      core1_0.Format(params.Format.Format),
		ImageColorSpace:  khr_surface.ColorSpace(params.Format.ColorSpace),
		ImageExtent:      core1_0.Extent2D{Width: params.Extent.Width, Height: params.Extent.Height},
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,
		ImageSharingMode: core1_0.SharingModeExclusive,
		PreTransform:     khr_surface.SurfaceTransformFlags(params.PreTransform),
		CompositeAlpha:   khr_surface.CompositeAlphaFlags(params.CompositeAlpha),
		PresentMode:      khr_surface.PresentMode(params.PresentMode),
		Clipped:          true,
		OldSwapchain:     oldSwapchain,
	}

	if graphicsQueueFamily != presentQueueFamily {
		info.ImageSharingMode = core1_0.SharingModeConcurrent
		info.QueueFamilyIndices = []int{graphicsQueueFamily, presentQueueFamily}
	}

	return info
}
