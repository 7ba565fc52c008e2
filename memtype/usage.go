package memtype

import "github.com/vkngwrapper/core/v2/core1_0"

// MemoryUsage is an enum passed to the Usage field of Requirements to add property flags appropriate
// to a common access pattern on top of the flags the caller specifies
type MemoryUsage uint32

const (
	// MemoryUsageUnknown adds no flags: only the flags specified in Requirements are considered
	MemoryUsageUnknown MemoryUsage = iota
	// MemoryUsageGPUOnly is for resources only ever accessed by the device, such as images used as
	// attachments. DeviceLocal memory is preferred.
	MemoryUsageGPUOnly
	// MemoryUsageCPUToGPU is for resources written by the host every time they change and read by the
	// device, such as the vertex buffer of a simple demo. HostVisible and HostCoherent memory is required,
	// so writes need no flush, and DeviceLocal memory is preferred.
	MemoryUsageCPUToGPU
	// MemoryUsageGPUToCPU is for resources written by the device and read back by the host. HostVisible
	// memory is required and HostCached memory is preferred.
	MemoryUsageGPUToCPU
	// MemoryUsageGPULazilyAllocated is for transient attachments. LazilyAllocated memory is required.
	MemoryUsageGPULazilyAllocated
)

var memoryUsageMapping = map[MemoryUsage]string{
	MemoryUsageUnknown:            "MemoryUsageUnknown",
	MemoryUsageGPUOnly:            "MemoryUsageGPUOnly",
	MemoryUsageCPUToGPU:           "MemoryUsageCPUToGPU",
	MemoryUsageGPUToCPU:           "MemoryUsageGPUToCPU",
	MemoryUsageGPULazilyAllocated: "MemoryUsageGPULazilyAllocated",
}

func (u MemoryUsage) String() string {
	return memoryUsageMapping[u]
}

// Requirements describe which memory types are acceptable for a resource
type Requirements struct {
	// Usage adds flags for a common access pattern on top of the flags below
	Usage MemoryUsage

	// RequiredFlags must all be present on the chosen memory type
	RequiredFlags core1_0.MemoryPropertyFlags
	// PreferredFlags should be present on the chosen memory type, if possible
	PreferredFlags core1_0.MemoryPropertyFlags
	// NotPreferredFlags should be absent from the chosen memory type, if possible
	NotPreferredFlags core1_0.MemoryPropertyFlags

	// MemoryTypeBits, if nonzero, further restricts the acceptable memory types to those whose bits are set
	MemoryTypeBits uint32
}

func (r *Requirements) memoryPreferences() (requiredFlags, preferredFlags, notPreferredFlags core1_0.MemoryPropertyFlags) {
	requiredFlags = r.RequiredFlags
	preferredFlags = r.PreferredFlags
	notPreferredFlags = r.NotPreferredFlags

	switch r.Usage {
	case MemoryUsageGPUOnly:
		preferredFlags |= core1_0.MemoryPropertyDeviceLocal
	case MemoryUsageCPUToGPU:
		requiredFlags |= core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent
		preferredFlags |= core1_0.MemoryPropertyDeviceLocal
	case MemoryUsageGPUToCPU:
		requiredFlags |= core1_0.MemoryPropertyHostVisible
		preferredFlags |= core1_0.MemoryPropertyHostCached
	case MemoryUsageGPULazilyAllocated:
		requiredFlags |= core1_0.MemoryPropertyLazilyAllocated
	}

	// Flags that are required are trivially preferred
	preferredFlags &^= requiredFlags
	notPreferredFlags &^= requiredFlags

	return requiredFlags, preferredFlags, notPreferredFlags
}
