package raster2d

import "github.com/vexraster/raster2d/internal/msdf"

// MSDFOptions configures GenerateMSDF.
type MSDFOptions = msdf.Options

// GenerateMSDF rasterizes p into a multi-channel signed distance field
// (spec §4.7, component C7): an RGBA bitmap whose R/G/B channels each
// carry a signed distance to a colored subset of p's outline, such that a
// GPU sampler reconstructs sharp corners via median(R,G,B). Alpha is
// always opaque.
func GenerateMSDF(p *Path, opts MSDFOptions) *Bitmap {
	return msdf.Generate(p, opts)
}

// MedianMSDF reconstructs the true outline's signed distance from a
// decoded MSDF pixel's three channels.
func MedianMSDF(r, g, b byte) byte {
	return msdf.Median(r, g, b)
}
