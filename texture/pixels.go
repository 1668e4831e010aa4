package texture

import (
	"image"
	"image/color"
	"image/draw"
)

// pixels converts a decoded image into a tightly packed byte buffer plus its
// channel count. Single-channel images upload as one byte per pixel, YCbCr
// sources repack to 3-byte RGB, and everything else normalizes to 4-byte
// RGBA.
func pixels(img image.Image) (data []byte, channels int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		data = make([]byte, w*h)
		for y := 0; y < h; y++ {
			copy(data[y*w:(y+1)*w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return data, 1

	case *image.Gray16:
		data = make([]byte, w*h)
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < w; x++ {
				data[y*w+x] = row[x*2] // high byte
			}
		}
		return data, 1

	case *image.YCbCr:
		data = make([]byte, w*h*3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				yi := src.YOffset(bounds.Min.X+x, bounds.Min.Y+y)
				ci := src.COffset(bounds.Min.X+x, bounds.Min.Y+y)
				r, g, b := color.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
				i := (y*w + x) * 3
				data[i+0] = r
				data[i+1] = g
				data[i+2] = b
			}
		}
		return data, 3
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix, 4
}

// vflip reverses the row order of a tightly packed pixel buffer in place.
// Row copy is much faster than per-pixel addressing.
func vflip(data []byte, width, height, channels int) {
	rowSize := width * channels
	tmp := make([]byte, rowSize)
	for y := 0; y < height/2; y++ {
		top := data[y*rowSize : (y+1)*rowSize]
		bottom := data[(height-1-y)*rowSize : (height-y)*rowSize]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
