package surface

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slices"
)

// SwapchainParams is the full set of negotiated values that must be passed to swapchain creation
type SwapchainParams struct {
	Extent         Extent2D
	ImageCount     int
	Format         Format
	PresentMode    PresentMode
	PreTransform   TransformFlags
	CompositeAlpha CompositeAlphaFlags
}

// Equal returns true if both sets of parameters would create an identical swapchain
func (p *SwapchainParams) Equal(other *SwapchainParams) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

func (p *SwapchainParams) PrintParameters(json *jwriter.ObjectState) {
	json.Name("Width").Int(p.Extent.Width)
	json.Name("Height").Int(p.Extent.Height)
	json.Name("ImageCount").Int(p.ImageCount)
	json.Name("Format").Int(int(p.Format.Format))
	json.Name("ColorSpace").Int(int(p.Format.ColorSpace))
	json.Name("PresentMode").String(p.PresentMode.String())
	json.Name("PreTransform").String(p.PreTransform.String())
	json.Name("CompositeAlpha").String(p.CompositeAlpha.String())
}

// String renders the parameters as a JSON object
func (p *SwapchainParams) String() string {
	writer := jwriter.NewWriter()
	o := writer.Object()
	p.PrintParameters(&o)
	o.End()

	return string(writer.Bytes())
}

// CheckAgainst verifies that these parameters lie within what support reported: the extent is within
// the image extent limits, the image count within the image count limits, and the format and present
// mode are drawn from the candidate sets.
func (p *SwapchainParams) CheckAgainst(support *SupportDetails) error {
	caps := support.Capabilities

	if caps.CurrentExtent.IsUndefined() {
		if p.Extent.Width < caps.MinImageExtent.Width || p.Extent.Width > caps.MaxImageExtent.Width ||
			p.Extent.Height < caps.MinImageExtent.Height || p.Extent.Height > caps.MaxImageExtent.Height {
			return errors.Newf("extent %dx%d lies outside of [%dx%d, %dx%d]", p.Extent.Width, p.Extent.Height,
				caps.MinImageExtent.Width, caps.MinImageExtent.Height, caps.MaxImageExtent.Width, caps.MaxImageExtent.Height)
		}
	} else if p.Extent != caps.CurrentExtent {
		return errors.Newf("extent %dx%d does not match the current extent %dx%d", p.Extent.Width, p.Extent.Height,
			caps.CurrentExtent.Width, caps.CurrentExtent.Height)
	}

	if p.ImageCount < caps.MinImageCount || (caps.MaxImageCount != 0 && p.ImageCount > caps.MaxImageCount) {
		return errors.Newf("image count %d lies outside of [%d, %d]", p.ImageCount, caps.MinImageCount, caps.MaxImageCount)
	}

	if !slices.Contains(support.Formats, p.Format) {
		return errors.Newf("format %+v was not offered by the surface", p.Format)
	}

	if !slices.Contains(support.PresentModes, p.PresentMode) {
		return errors.Newf("present mode %s was not offered by the surface", p.PresentMode)
	}

	return nil
}

type negotiation struct {
	params  *SwapchainParams
	support *SupportDetails
}

func (n negotiation) Validate() error {
	return n.params.CheckAgainst(n.support)
}
