package vkng

import "github.com/vkngwrapper/core/v2/common"

// VersionSource is anything that reports the vulkan API version it supports, such as a core.Loader
type VersionSource interface {
	APIVersion() common.APIVersion
}

const patchVersionMask uint32 = 0xFFF

// InstanceVersion returns the highest instance-level API version the loader supports, with the patch
// component cleared so it can be passed as an InstanceCreateInfo's APIVersion and compared against
// common.Vulkan1_0, common.Vulkan1_1, etc.
func InstanceVersion(source VersionSource) common.APIVersion {
	return common.APIVersion(uint32(source.APIVersion()) &^ patchVersionMask)
}
