package vkng

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/keeper/surface"
)

// SurfaceSupportSource is the part of khr_surface.Surface that reports presentation support
type SurfaceSupportSource interface {
	PhysicalDeviceSurfaceCapabilities(device core1_0.PhysicalDevice) (*khr_surface.SurfaceCapabilities, common.VkResult, error)
	PhysicalDeviceSurfaceFormats(device core1_0.PhysicalDevice) ([]khr_surface.SurfaceFormat, common.VkResult, error)
	PhysicalDeviceSurfacePresentModes(device core1_0.PhysicalDevice) ([]khr_surface.PresentMode, common.VkResult, error)
}

// QuerySurfaceSupport queries everything physicalDevice reports about presenting to source, converted
// to the values a surface.Negotiator consumes
func QuerySurfaceSupport(source SurfaceSupportSource, physicalDevice core1_0.PhysicalDevice) (*surface.SupportDetails, common.VkResult, error) {
	capabilities, res, err := source.PhysicalDeviceSurfaceCapabilities(physicalDevice)
	if err != nil {
		return nil, res, err
	}

	formats, res, err := source.PhysicalDeviceSurfaceFormats(physicalDevice)
	if err != nil {
		return nil, res, err
	}

	presentModes, res, err := source.PhysicalDeviceSurfacePresentModes(physicalDevice)
	if err != nil {
		return nil, res, err
	}

	return &surface.SupportDetails{
		Capabilities: ConvertCapabilities(capabilities),
		Formats:      ConvertFormats(formats),
		PresentModes: ConvertPresentModes(presentModes),
	}, core1_0.VKSuccess, nil
}

func convertExtent(extent core1_0.Extent2D) surface.Extent2D {
	return surface.Extent2D{Width: extent.Width, Height: extent.Height}
}

func ConvertCapabilities(capabilities *khr_surface.SurfaceCapabilities) *surface.Capabilities {
	if capabilities == nil {
		return nil
	}

	return &surface.Capabilities{
		MinImageCount:           capabilities.MinImageCount,
		MaxImageCount:           capabilities.MaxImageCount,
		CurrentExtent:           convertExtent(capabilities.CurrentExtent),
		MinImageExtent:          convertExtent(capabilities.MinImageExtent),
		MaxImageExtent:          convertExtent(capabilities.MaxImageExtent),
		SupportedTransforms:     surface.TransformFlags(capabilities.SupportedTransforms),
		CurrentTransform:        surface.TransformFlags(capabilities.CurrentTransform),
		SupportedCompositeAlpha: surface.CompositeAlphaFlags(capabilities.SupportedCompositeAlpha),
	}
}

func ConvertFormats(formats []khr_surface.SurfaceFormat) []surface.Format {
	converted := make([]surface.Format, 0, len(formats))
	for _, format := range formats {
		converted = append(converted, surface.Format{
			Format:     surface.PixelFormat(format.Format),
			ColorSpace: surface.ColorSpace(format.ColorSpace),
		})
	}

	return converted
}

func ConvertPresentModes(presentModes []khr_surface.PresentMode) []surface.PresentMode {
	converted := make([]surface.PresentMode, 0, len(presentModes))
	for _, mode := range presentModes {
		converted = append(converted, surface.PresentMode(mode))
	}

	return converted
}
