package handle

// Kind identifies which sort of native resource an Owner holds. It is only used for
// diagnostics: logging, stats output, and error messages.
type Kind uint32

const (
	KindOther Kind = iota
	KindInstance
	KindDebugMessenger
	KindSurface
	KindDevice
	KindSwapchain
	KindImageView
	KindShaderModule
	KindRenderPass
	KindPipelineLayout
	KindPipeline
	KindFramebuffer
	KindCommandPool
	KindSemaphore
	KindFence
	KindBuffer
	KindDeviceMemory
	// KindWindow is not produced by the vkng adapters; callers use it for owners of their own
	// windowing handles
	KindWindow
)

var kindMapping = map[Kind]string{
	KindOther:          "KindOther",
	KindInstance:       "KindInstance",
	KindDebugMessenger: "KindDebugMessenger",
	KindSurface:        "KindSurface",
	KindDevice:         "KindDevice",
	KindSwapchain:      "KindSwapchain",
	KindImageView:      "KindImageView",
	KindShaderModule:   "KindShaderModule",
	KindRenderPass:     "KindRenderPass",
	KindPipelineLayout: "KindPipelineLayout",
	KindPipeline:       "KindPipeline",
	KindFramebuffer:    "KindFramebuffer",
	KindCommandPool:    "KindCommandPool",
	KindSemaphore:      "KindSemaphore",
	KindFence:          "KindFence",
	KindBuffer:         "KindBuffer",
	KindDeviceMemory:   "KindDeviceMemory",
	KindWindow:         "KindWindow",
}

func (k Kind) String() string {
	str, ok := kindMapping[k]
	if !ok {
		return "unknown"
	}
	return str
}
