package captcha

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := NewCode()
		require.Len(t, code, CodeLength)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, ch), "unexpected character %q", ch)
		}
		seen[code] = true
	}
	// 50 draws from a 36^5 space should essentially never collide.
	assert.Greater(t, len(seen), 1)
}

func TestRenderProducesPNG(t *testing.T) {
	data, err := Render("AB12C")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, imageWidth, bounds.Dx())
	assert.Equal(t, imageHeight, bounds.Dy())
}
