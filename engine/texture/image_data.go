package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// ImageData holds decoded RGBA pixel data pending GPU upload.
// Pixels are 4 bytes per texel, row-major, with the bottom image row first to
// match OpenGL's bottom-left texture-coordinate origin.
type ImageData struct {
	// Pixels is the RGBA pixel data, 4 bytes per texel.
	Pixels []byte

	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int
}

// DecodeFile decodes a PNG or JPEG file into RGBA pixel data.
//
// Parameters:
//   - path: path to the image file
//
// Returns:
//   - *ImageData: decoded pixel data with the rows flipped for OpenGL
//   - error: error if the file cannot be opened or decoded
func DecodeFile(path string) (*ImageData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture file %s: %w", path, err)
	}
	return fromImage(img), nil
}

// DecodeBytes decodes in-memory PNG or JPEG data into RGBA pixel data.
//
// Parameters:
//   - data: raw image file bytes
//
// Returns:
//   - *ImageData: decoded pixel data with the rows flipped for OpenGL
//   - error: error if the data cannot be decoded
func DecodeBytes(data []byte) (*ImageData, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded image: %w", err)
	}
	return fromImage(img), nil
}

// fromImage converts any decoded image to tightly packed RGBA and flips the
// rows so the first row in Pixels is the bottom of the image. Image files
// store the top row first; OpenGL samples with v=0 at the bottom.
func fromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	flipped := make([]byte, len(rgba.Pix))
	rowLen := 4 * width
	for row := 0; row < height; row++ {
		src := rgba.Pix[row*rgba.Stride : row*rgba.Stride+rowLen]
		dst := flipped[(height-1-row)*rowLen:]
		copy(dst, src)
	}

	return &ImageData{
		Pixels: flipped,
		Width:  width,
		Height: height,
	}
}
