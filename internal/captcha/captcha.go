// Package captcha generates short challenge codes and renders them as
// PNG images.
package captcha

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math/rand/v2"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CodeLength is the number of characters in a challenge code.
const CodeLength = 5

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	imageWidth  = 100
	imageHeight = 40
)

// NewCode returns a random CodeLength-character code drawn uniformly from
// uppercase letters and digits.
func NewCode() string {
	buf := make([]byte, CodeLength)
	for i := range buf {
		buf[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(buf)
}

// Render draws the code as black text on a white background and returns
// the PNG encoding.
func Render(code string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(10),
			Y: fixed.I((imageHeight + face.Ascent) / 2),
		},
	}
	drawer.DrawString(code)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
