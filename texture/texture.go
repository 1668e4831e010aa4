// Package texture decodes an image file into a GPU-resident sampler. Decode
// failures are recoverable: the texture is left zero-initialized (binding it
// samples nothing) and a warning is logged, so the application keeps running
// with a visibly untextured asset.
package texture

import (
	"image"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/mwrona/glimmer"
	"github.com/mwrona/glimmer/gfx"

	// registered image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture owns one GL texture handle.
type Texture struct {
	id     uint32
	target gfx.TextureTarget

	width    int
	height   int
	channels int
}

// glFormat picks the pixel transfer format from the decoded channel count.
var glFormat = map[int]uint32{
	1: gl.RED,
	2: gl.RG,
	3: gl.RGB,
	4: gl.RGBA,
}

// New decodes the image file at path and uploads it under the given target
// with the wrap and filter configuration. flipY reverses the row order before
// upload. An unreadable or undecodable file logs a warning and returns a
// zero-initialized, unusable texture.
func New(path string, target gfx.TextureTarget, flipY bool, wrapS, wrapT, wrapR gfx.WrapMode, min gfx.MinFilter, mag gfx.MagFilter) *Texture {
	t := &Texture{target: target}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(target.GL(), t.id)

	gl.TexParameteri(target.GL(), gl.TEXTURE_WRAP_S, wrapS.GL())
	gl.TexParameteri(target.GL(), gl.TEXTURE_WRAP_T, wrapT.GL())
	gl.TexParameteri(target.GL(), gl.TEXTURE_WRAP_R, wrapR.GL())
	gl.TexParameteri(target.GL(), gl.TEXTURE_MIN_FILTER, min.GL())
	gl.TexParameteri(target.GL(), gl.TEXTURE_MAG_FILTER, mag.GL())

	img, err := decode(path)
	if err != nil {
		glimmer.Logger().Warn("failed to load texture", "path", path, "err", err)
		return t
	}

	data, channels := pixels(img)
	t.width = img.Bounds().Dx()
	t.height = img.Bounds().Dy()
	t.channels = channels
	if flipY {
		vflip(data, t.width, t.height, channels)
	}

	format := glFormat[channels]
	// tightly packed rows of any channel count
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(target.GL(), 0, int32(format), int32(t.width), int32(t.height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(data))
	if min.Mipmapped() {
		gl.GenerateMipmap(target.GL())
	}

	glimmer.Logger().Info("texture loaded",
		"path", path, "width", t.width, "height", t.height, "channels", channels)
	return t
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// Bind activates the given texture unit and binds this texture to it.
func (t *Texture) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(t.target.GL(), t.id)
}

// Unbind detaches any texture from this texture's target.
func (t *Texture) Unbind() {
	gl.BindTexture(t.target.GL(), 0)
}

// Width returns the decoded pixel width, zero if decoding failed.
func (t *Texture) Width() int { return t.width }

// Height returns the decoded pixel height, zero if decoding failed.
func (t *Texture) Height() int { return t.height }

// Channels returns the decoded channel count, zero if decoding failed.
func (t *Texture) Channels() int { return t.channels }

// Release frees the GL handle. Safe to call more than once.
func (t *Texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
