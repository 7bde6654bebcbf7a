// Package render provides the minimal offscreen rendering substrate used by
// the lightmap baking pipeline: float render targets, line/triangle models,
// named techniques and render paths, and a narrow pluggable backend.
package render

import "fmt"

// TextureFormat identifies a floating-point render-target texture format.
type TextureFormat int

const (
	FormatR32F TextureFormat = iota + 1
	FormatRG32F
	FormatRGBA32F
)

// FormatForChannels returns the float texture format for the given channel
// count. Lightmaps are baked with 1, 2 or 4 channels; any other count is a
// programming error and panics.
func FormatForChannels(numChannels int) TextureFormat {
	switch numChannels {
	case 1:
		return FormatR32F
	case 2:
		return FormatRG32F
	case 4:
		return FormatRGBA32F
	default:
		panic(fmt.Sprintf("render: unsupported channel count %d", numChannels))
	}
}

// Channels returns the number of channels the format carries.
func (f TextureFormat) Channels() int {
	switch f {
	case FormatR32F:
		return 1
	case FormatRG32F:
		return 2
	case FormatRGBA32F:
		return 4
	}
	return 0
}

// String returns the format name.
func (f TextureFormat) String() string {
	switch f {
	case FormatR32F:
		return "R32F"
	case FormatRG32F:
		return "RG32F"
	case FormatRGBA32F:
		return "RGBA32F"
	}
	return "unknown"
}
