package memtype

import (
	"math"
	"math/bits"

	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// FindMemoryTypeIndex chooses the memory type a resource should be allocated from.
//
// memoryProperties - The memory properties of the PhysicalDevice the resource will be allocated on
//
// memoryTypeBits - The MemoryTypeBits field of the resource's core1_0.MemoryRequirements
//
// requirements - Flags the chosen memory type must have, or should or should not have if possible
//
// Memory types outside of memoryTypeBits, or missing any required flag, are never chosen. Among the rest,
// the type with the fewest missing preferred flags plus present not-preferred flags wins, with ties going
// to the lowest index. If no memory type is acceptable, core1_0.VKErrorFeatureNotPresent is returned.
func FindMemoryTypeIndex(
	memoryProperties *core1_0.PhysicalDeviceMemoryProperties,
	memoryTypeBits uint32,
	requirements Requirements,
) (int, common.VkResult, error) {
	if requirements.MemoryTypeBits != 0 {
		memoryTypeBits &= requirements.MemoryTypeBits
	}

	requiredFlags, preferredFlags, notPreferredFlags := requirements.memoryPreferences()

	bestMemoryTypeIndex := -1
	minCost := math.MaxInt

	for memTypeIndex := 0; memTypeIndex < len(memoryProperties.MemoryTypes) && memTypeIndex < 32; memTypeIndex++ {
		memTypeBit := uint32(1 << memTypeIndex)

		if memTypeBit&memoryTypeBits == 0 {
			// This memory type is banned by the bitmask
			continue
		}

		flags := memoryProperties.MemoryTypes[memTypeIndex].PropertyFlags
		if requiredFlags&flags != requiredFlags {
			// This memory type is missing required flags
			continue
		}

		missingPreferredFlags := preferredFlags & ^flags
		presentNotPreferredFlags := notPreferredFlags & flags
		cost := bits.OnesCount32(uint32(missingPreferredFlags)) + bits.OnesCount32(uint32(presentNotPreferredFlags))
		// Strict less-than keeps the lowest index among equal costs
		if cost == 0 {
			return memTypeIndex, core1_0.VKSuccess, nil
		} else if cost < minCost {
			bestMemoryTypeIndex = memTypeIndex
			minCost = cost
		}
	}

	if bestMemoryTypeIndex < 0 {
		return -1, core1_0.VKErrorFeatureNotPresent, core1_0.VKErrorFeatureNotPresent.ToError()
	}

	return bestMemoryTypeIndex, core1_0.VKSuccess, nil
}

// FindMemoryTypeIndexForRequirements is FindMemoryTypeIndex for a resource whose MemoryRequirements have
// already been queried from a Buffer or Image
func FindMemoryTypeIndexForRequirements(
	memoryProperties *core1_0.PhysicalDeviceMemoryProperties,
	memoryRequirements *core1_0.MemoryRequirements,
	requirements Requirements,
) (int, common.VkResult, error) {
	return FindMemoryTypeIndex(memoryProperties, memoryRequirements.MemoryTypeBits, requirements)
}
