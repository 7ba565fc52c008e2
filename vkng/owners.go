package vkng

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/keeper/handle"
)

// Destroyable is any vulkan object that is torn down with a Destroy call taking the allocation callbacks
// it was created with
type Destroyable interface {
	comparable
	Destroy(callbacks *driver.AllocationCallbacks)
}

// DestroyWith returns a ReleaseFunc that destroys objects with the provided allocation callbacks
func DestroyWith[T Destroyable](callbacks *driver.AllocationCallbacks) handle.ReleaseFunc[T] {
	return handle.ReleaseWith(func(object T) {
		object.Destroy(callbacks)
	})
}

// Own adopts object into scope under an owner that destroys it with callbacks
func Own[T Destroyable](scope *handle.Scope, kind handle.Kind, object T, callbacks *driver.AllocationCallbacks) (*handle.Owner[T], error) {
	return handle.Own[T](scope, kind, object, DestroyWith[T](callbacks))
}

func OwnInstance(scope *handle.Scope, instance core1_0.Instance, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.Instance], error) {
	return Own[core1_0.Instance](scope, handle.KindInstance, instance, callbacks)
}

func OwnDebugMessenger(scope *handle.Scope, messenger ext_debug_utils.DebugUtilsMessenger, callbacks *driver.AllocationCallbacks) (*handle.Owner[ext_debug_utils.DebugUtilsMessenger], error) {
	return Own[ext_debug_utils.DebugUtilsMessenger](scope, handle.KindDebugMessenger, messenger, callbacks)
}

func OwnSurface(scope *handle.Scope, target khr_surface.Surface, callbacks *driver.AllocationCallbacks) (*handle.Owner[khr_surface.Surface], error) {
	return Own[khr_surface.Surface](scope, handle.KindSurface, target, callbacks)
}

// OwnDevice adopts device under an owner that waits for the device to go idle before destroying it,
// so no queued work still references the device's children. A failed wait is logged by the owner;
// the device is destroyed regardless.
func OwnDevice(scope *handle.Scope, device core1_0.Device, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.Device], error) {
	return handle.Own[core1_0.Device](scope, handle.KindDevice, device, func(device core1_0.Device) error {
		_, err := device.WaitIdle()
		device.Destroy(callbacks)
		return err
	})
}

func OwnSwapchain(scope *handle.Scope, swapchain khr_swapchain.Swapchain, callbacks *driver.AllocationCallbacks) (*handle.Owner[khr_swapchain.Swapchain], error) {
	return Own[khr_swapchain.Swapchain](scope, handle.KindSwapchain, swapchain, callbacks)
}

// EmptySwapchain creates an empty swapchain owner and adopts it into scope. The swapchain is attached
// with Reset once it has been created, and replaced with Reset again whenever it is recreated.
func EmptySwapchain(scope *handle.Scope, callbacks *driver.AllocationCallbacks) (*handle.Owner[khr_swapchain.Swapchain], error) {
	return OwnSwapchain(scope, nil, callbacks)
}

func OwnImageView(scope *handle.Scope, imageView core1_0.ImageView, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.ImageView], error) {
	return Own[core1_0.ImageView](scope, handle.KindImageView, imageView, callbacks)
}

func OwnShaderModule(scope *handle.Scope, shaderModule core1_0.ShaderModule, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.ShaderModule], error) {
	return Own[core1_0.ShaderModule](scope, handle.KindShaderModule, shaderModule, callbacks)
}

func OwnRenderPass(scope *handle.Scope, renderPass core1_0.RenderPass, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.RenderPass], error) {
	return Own[core1_0.RenderPass](scope, handle.KindRenderPass, renderPass, callbacks)
}

func OwnPipelineLayout(scope *handle.Scope, layout core1_0.PipelineLayout, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.PipelineLayout], error) {
	return Own[core1_0.PipelineLayout](scope, handle.KindPipelineLayout, layout, callbacks)
}

func OwnPipeline(scope *handle.Scope, pipeline core1_0.Pipeline, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.Pipeline], error) {
	return Own[core1_0.Pipeline](scope, handle.KindPipeline, pipeline, callbacks)
}

func OwnFramebuffer(scope *handle.Scope, framebuffer core1_0.Framebuffer, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.Framebuffer], error) {
	return Own[core1_0.Framebuffer](scope, handle.KindFramebuffer, framebuffer, callbacks)
}

func OwnCommandPool(scope *handle.Scope, commandPool core1_0.CommandPool, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.CommandPool], error) {
	return Own[core1_0.CommandPool](scope, handle.KindCommandPool, commandPool, callbacks)
}

func OwnSemaphore(scope *handle.Scope, semaphore core1_0.Semaphore, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.Semaphore], error) {
	return Own[core1_0.Semaphore](scope, handle.KindSemaphore, semaphore, callbacks)
}

func OwnFence(scope *handle.Scope, fence core1_0.Fence, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.Fence], error) {
	return Own[core1_0.Fence](scope, handle.KindFence, fence, callbacks)
}

func OwnBuffer(scope *handle.Scope, buffer core1_0.Buffer, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.Buffer], error) {
	return Own[core1_0.Buffer](scope, handle.KindBuffer, buffer, callbacks)
}

// OwnDeviceMemory adopts memory under an owner that frees it with callbacks
func OwnDeviceMemory(scope *handle.Scope, memory core1_0.DeviceMemory, callbacks *driver.AllocationCallbacks) (*handle.Owner[core1_0.DeviceMemory], error) {
	return handle.Own[core1_0.DeviceMemory](scope, handle.KindDeviceMemory, memory, handle.ReleaseWith(func(memory core1_0.DeviceMemory) {
		memory.Free(callbacks)
	}))
}
