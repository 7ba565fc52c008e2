package surface

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/keeper/keeputils"
)

// Extent2D is a size in pixels
type Extent2D struct {
	Width  int
	Height int
}

// IsUndefined returns true if this extent is the "follow the window size" sentinel (0xFFFFFFFF).
// Bindings that carry the dimension as a signed 32-bit value report it as -1, so any negative
// width is accepted too.
func (e Extent2D) IsUndefined() bool {
	return e.Width < 0 || uint64(e.Width) == math.MaxUint32
}

// UndefinedExtent is the CurrentExtent reported when the swapchain extent is chosen by the application
var UndefinedExtent = Extent2D{Width: -1, Height: -1}

// PixelFormat is a VkFormat value
type PixelFormat int32

const (
	PixelFormatUndefined     PixelFormat = 0
	PixelFormatR8G8B8A8UNorm PixelFormat = 37
	PixelFormatR8G8B8A8SRGB  PixelFormat = 43
	PixelFormatB8G8R8A8UNorm PixelFormat = 44
	PixelFormatB8G8R8A8SRGB  PixelFormat = 50
)

// ColorSpace is a VkColorSpaceKHR value
type ColorSpace int32

const (
	ColorSpaceSRGBNonlinear ColorSpace = 0
)

// Format is a pixel format together with the color space the presentation engine interprets it in
type Format struct {
	Format     PixelFormat
	ColorSpace ColorSpace
}

// TransformFlags is a set of VkSurfaceTransformFlagBitsKHR
type TransformFlags int32

var transformFlagsMapping = common.NewFlagStringMapping[TransformFlags]()

func (f TransformFlags) Register(str string) {
	transformFlagsMapping.Register(f, str)
}
func (f TransformFlags) String() string {
	return transformFlagsMapping.FlagsToString(f)
}

const (
	TransformIdentity TransformFlags = 1 << iota
	TransformRotate90
	TransformRotate180
	TransformRotate270
	TransformHorizontalMirror
	TransformHorizontalMirrorRotate90
	TransformHorizontalMirrorRotate180
	TransformHorizontalMirrorRotate270
	TransformInherit
)

// CompositeAlphaFlags is a set of VkCompositeAlphaFlagBitsKHR
type CompositeAlphaFlags int32

var compositeAlphaFlagsMapping = common.NewFlagStringMapping[CompositeAlphaFlags]()

func (f CompositeAlphaFlags) Register(str string) {
	compositeAlphaFlagsMapping.Register(f, str)
}
func (f CompositeAlphaFlags) String() string {
	return compositeAlphaFlagsMapping.FlagsToString(f)
}

const (
	CompositeAlphaOpaque CompositeAlphaFlags = 1 << iota
	CompositeAlphaPreMultiplied
	CompositeAlphaPostMultiplied
	CompositeAlphaInherit
)

func init() {
	TransformIdentity.Register("Identity")
	TransformRotate90.Register("Rotate 90")
	TransformRotate180.Register("Rotate 180")
	TransformRotate270.Register("Rotate 270")
	TransformHorizontalMirror.Register("Horizontal Mirror")
	TransformHorizontalMirrorRotate90.Register("Horizontal Mirror Rotate 90")
	TransformHorizontalMirrorRotate180.Register("Horizontal Mirror Rotate 180")
	TransformHorizontalMirrorRotate270.Register("Horizontal Mirror Rotate 270")
	TransformInherit.Register("Inherit")

	CompositeAlphaOpaque.Register("Opaque")
	CompositeAlphaPreMultiplied.Register("Pre-Multiplied")
	CompositeAlphaPostMultiplied.Register("Post-Multiplied")
	CompositeAlphaInherit.Register("Inherit")
}

// PresentMode is a VkPresentModeKHR value
type PresentMode int32

const (
	PresentModeImmediate PresentMode = iota
	PresentModeMailbox
	// PresentModeFIFO is the blocking vsync mode. Every conformant implementation supports it.
	PresentModeFIFO
	PresentModeFIFORelaxed
)

var presentModeMapping = map[PresentMode]string{
	PresentModeImmediate:   "Immediate",
	PresentModeMailbox:     "Mailbox",
	PresentModeFIFO:        "FIFO",
	PresentModeFIFORelaxed: "FIFO Relaxed",
}

func (m PresentMode) String() string {
	str, ok := presentModeMapping[m]
	if !ok {
		return "unknown"
	}
	return str
}

// Capabilities is the set of limits a physical device reports for presenting to one surface
type Capabilities struct {
	MinImageCount int
	// MaxImageCount is 0 if there is no upper bound on the number of images
	MaxImageCount int

	// CurrentExtent is UndefinedExtent if the application chooses the extent
	CurrentExtent  Extent2D
	MinImageExtent Extent2D
	MaxImageExtent Extent2D

	SupportedTransforms     TransformFlags
	CurrentTransform        TransformFlags
	SupportedCompositeAlpha CompositeAlphaFlags
}

// Validate reports capability data that contradicts itself. Conformant implementations never
// produce it, but negotiation refuses to run against it.
func (c *Capabilities) Validate() error {
	if c.MinImageCount < 1 {
		return errors.Wrapf(ErrConfiguration, "minimum image count is %d", c.MinImageCount)
	}
	if c.MaxImageCount < 0 {
		return errors.Wrapf(ErrConfiguration, "maximum image count is %d", c.MaxImageCount)
	}
	if c.MaxImageCount != 0 {
		err := keeputils.CheckRange(c.MinImageCount, c.MaxImageCount, "image count")
		if err != nil {
			return errors.Mark(err, ErrConfiguration)
		}
	}

	err := keeputils.CheckRange(c.MinImageExtent.Width, c.MaxImageExtent.Width, "image extent width")
	if err != nil {
		return errors.Mark(err, ErrConfiguration)
	}
	err = keeputils.CheckRange(c.MinImageExtent.Height, c.MaxImageExtent.Height, "image extent height")
	if err != nil {
		return errors.Mark(err, ErrConfiguration)
	}

	return nil
}

// SupportDetails is everything a physical device reports about presenting to a surface
type SupportDetails struct {
	Capabilities *Capabilities
	Formats      []Format
	PresentModes []PresentMode
}
