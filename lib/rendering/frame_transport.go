package rendering

import (
	"image"

	"github.com/fosdem/trianglix/lib/rendering/gpu"
)

// GetFrameFromGPU reads back the current draw buffer. GL rows start at
// the bottom, so they are flipped into image order.
func GetFrameFromGPU(drv gpu.Driver, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	pixels := drv.ReadPixels(0, 0, int32(width), int32(height))

	stride := width * 4
	for y := range height {
		src := pixels[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img
}
