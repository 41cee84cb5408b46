package raster2d

import (
	"github.com/vexraster/raster2d/internal/pixfmt"
	"github.com/vexraster/raster2d/internal/scanraster"
)

// Gamma is a 256-entry correction table applied to coverage before it
// reaches the target bitmap (agg_go's SetGamma/ApplyGamma idiom).
type Gamma = scanraster.Gamma

// IdentityGamma returns the no-op gamma table.
func IdentityGamma() *Gamma {
	return scanraster.IdentityGamma()
}

// FilterWeights is a 5-tap FIR kernel used by the LCD pixel modes.
type FilterWeights = pixfmt.FilterWeights

var (
	DefaultFilter = pixfmt.DefaultFilter
	LightFilter   = pixfmt.LightFilter
	LegacyFilter  = pixfmt.LegacyFilter
)

// Options controls how a path maps into target pixel space, how it is
// filled, and how the result is packed (spec §6 Raster options).
type Options struct {
	Width, Height int
	// ScaleX, ScaleY map design units to pixel units; OffsetX, OffsetY
	// translate after scaling.
	ScaleX, ScaleY float64
	OffsetX        float64
	OffsetY        float64
	// Design-Y-up is mapped to bitmap-Y-down by default (spec §6);
	// NoFlipY turns that flip off.
	NoFlipY bool
	Rule    FillRule
	Mode    PixelMode
	// Foreground is the fill color for RGBA targets; coverage supplies the
	// alpha channel. Gray, Mono and LCD targets ignore it.
	Foreground Color
	Gamma      *Gamma
	// Filter and BGR configure the LCD subpixel filter; Filter defaults to
	// DefaultFilter when zero.
	Filter FilterWeights
	BGR    bool
	BottomUp bool
}

func (o Options) toScanOptions() scanraster.Options {
	return scanraster.Options{
		Width: o.Width, Height: o.Height,
		ScaleX: o.ScaleX, ScaleY: o.ScaleY,
		OffsetX: o.OffsetX, OffsetY: o.OffsetY,
		FlipY: !o.NoFlipY, Rule: o.Rule, Gamma: o.Gamma,
	}
}

// NewBitmap allocates a zeroed bitmap of the given mode, for callers that
// composite several Rasterize/GenerateMSDF passes into one target buffer.
func NewBitmap(width, height int, mode PixelMode, bottomUp bool) *Bitmap {
	return pixfmt.NewBitmap(width, height, mode, bottomUp)
}

// Rasterize is the top-level Path -> Bitmap entry point (spec §6): it
// wires internal/gpath's path model through internal/scanraster's
// cell-based scanline sweep into an internal/pixfmt target, and for the
// two LCD pixel modes runs the two-step oversample-then-filter pipeline
// (spec §4.5).
func Rasterize(p *Path, opts Options) (*Bitmap, error) {
	if opts.Mode == pixfmt.LCDHorizontal || opts.Mode == pixfmt.LCDVertical {
		return rasterizeLCD(p, opts)
	}

	bmp := pixfmt.NewBitmap(opts.Width, opts.Height, opts.Mode, opts.BottomUp)
	spans, err := scanraster.Render(p, opts.toScanOptions())
	if err != nil {
		return nil, err
	}
	pixfmt.PaintSpans(bmp, spans, opts.Foreground)
	return bmp, nil
}

// HitTest reports whether pixel (x,y) falls under at least half coverage
// of p, reusing the same cell sweep Rasterize uses rather than running a
// separate point-in-polygon test (spec §13 supplemented feature, grounded
// on agg_go's RasterizerScanlineAA.HitTest). Useful for cursor/caret
// picking against a glyph outline without materializing a bitmap.
func HitTest(p *Path, opts Options, x, y int) (bool, error) {
	return scanraster.HitTest(p, opts.toScanOptions(), x, y)
}

// rasterizeLCD renders into a Gray intermediate oversampled 3x along the
// subpixel axis (horizontal stripe layout scales X, vertical scales Y),
// then filters it down to one LCD triplet per output pixel (spec §4.5:
// "the oversampled intermediate is produced by rasterizing at 3x the
// horizontal [or vertical] scale").
func rasterizeLCD(p *Path, opts Options) (*Bitmap, error) {
	const oversample = 3

	scanOpts := opts.toScanOptions()
	overWidth, overHeight := opts.Width, opts.Height
	if opts.Mode == pixfmt.LCDHorizontal {
		overWidth *= oversample
		scanOpts.Width = overWidth
		scanOpts.ScaleX *= oversample
		scanOpts.OffsetX *= oversample
	} else {
		overHeight *= oversample
		scanOpts.Height = overHeight
		scanOpts.ScaleY *= oversample
		scanOpts.OffsetY *= oversample
	}

	intermediate := pixfmt.NewBitmap(overWidth, overHeight, pixfmt.Gray, opts.BottomUp)
	spans, err := scanraster.Render(p, scanOpts)
	if err != nil {
		return nil, err
	}
	pixfmt.PaintSpans(intermediate, spans, opts.Foreground)

	weights := opts.Filter
	if weights == (FilterWeights{}) {
		weights = DefaultFilter
	}
	if opts.Mode == pixfmt.LCDHorizontal {
		return pixfmt.FilterLCDHorizontal(intermediate, opts.Width, opts.Height, weights, opts.BGR), nil
	}
	return pixfmt.FilterLCDVertical(intermediate, opts.Width, opts.Height, weights, opts.BGR), nil
}
