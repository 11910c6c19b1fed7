package preprocess

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// DefaultImageSize is the input resolution the classifier was trained on.
const DefaultImageSize = 244

// ErrDecode indicates the uploaded bytes could not be decoded as an image.
var ErrDecode = errors.New("image decode failed")

// Channel means from the classifier's training pipeline (ImageNet, BGR order).
// The model expects mean-subtracted BGR values with no further scaling.
const (
	meanB = 103.939
	meanG = 116.779
	meanR = 123.68
)

// Preprocessor converts raw upload bytes into the flat NHWC tensor the model
// consumes, batch shape [1, size, size, 3].
type Preprocessor struct {
	size int
}

func New(size int) *Preprocessor {
	if size <= 0 {
		size = DefaultImageSize
	}
	return &Preprocessor{size: size}
}

// Size returns the target width/height in pixels.
func (p *Preprocessor) Size() int { return p.size }

// TensorLen returns the number of float values Preprocess produces.
func (p *Preprocessor) TensorLen() int { return p.size * p.size * 3 }

// Preprocess decodes data, forces a 3-channel representation, resizes to the
// target resolution, and applies the model's channel normalization.
func (p *Preprocessor) Preprocess(data []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	resized := resize.Resize(uint(p.size), uint(p.size), img, resize.Lanczos3)
	// Clone flattens whatever color model the decoder produced (grayscale,
	// paletted, alpha) into NRGBA so the channel reads below are uniform.
	rgb := imaging.Clone(resized)

	out := make([]float32, p.TensorLen())
	i := 0
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			c := rgb.NRGBAAt(x, y)
			out[i] = float32(c.B) - meanB
			out[i+1] = float32(c.G) - meanG
			out[i+2] = float32(c.R) - meanR
			i += 3
		}
	}
	return out, nil
}
