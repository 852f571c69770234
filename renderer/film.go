package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/natty-misc/foxel/tracer"
	"github.com/natty-misc/foxel/types"
)

// Gamma applied when converting wavelengths to display RGB.
const displayGamma = 0.8

// A film accumulates sensor hits into an image using a per-pixel running
// average, so the picture sharpens progressively as more batches land on
// it. Not safe for concurrent use; the renderer splats from a single
// goroutine between dispatches.
type Film struct {
	width  int
	height int

	// Per-pixel sample counts driving the running average.
	samples []float32

	img *image.RGBA
}

func NewFilm(width, height int) *Film {
	f := &Film{
		width:   width,
		height:  height,
		samples: make([]float32, width*height),
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
	}

	for i := range f.samples {
		f.samples[i] = 1.0
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}

	return f
}

// Blend the hits from a batch of intersection records into the image and
// return the number of records blended.
func (f *Film) Splat(records []tracer.Intersection) int {
	var hits int

	for i := range records {
		in := &records[i]
		if !in.Intersects() {
			continue
		}

		x := int(math.Round(float64(in.Screen[0] * float32(f.width-1))))
		y := int(math.Round(float64(in.Screen[1] * float32(f.height-1))))
		if x < 0 || x >= f.width || y < 0 || y >= f.height {
			continue
		}

		idx := y*f.width + x
		mix := 1.0 / f.samples[idx]

		old := f.img.RGBAAt(x, y)
		rgb := wavelengthToRGB(in.Photon.Wavelength)

		f.img.SetRGBA(x, y, color.RGBA{
			R: mixChannel(mix, rgb[0], old.R),
			G: mixChannel(mix, rgb[1], old.G),
			B: mixChannel(mix, rgb[2], old.B),
			A: 255,
		})

		f.samples[idx]++
		hits++
	}

	return hits
}

// The accumulated frame. The returned image shares the film's backing
// buffer and keeps updating on subsequent splats.
func (f *Film) Image() *image.RGBA {
	return f.img
}

func mixChannel(mix, newVal float32, oldVal uint8) uint8 {
	blended := mix*newVal + (1.0-mix)*float32(oldVal)/255.0
	if blended < 0 {
		blended = 0
	} else if blended > 1 {
		blended = 1
	}
	return uint8(blended * 255.0)
}

// Map a wavelength in nm to linear RGB using a piecewise approximation of
// the visible spectrum (380-780nm); wavelengths outside the band map to
// black. The edges of the band fade out to mimic perceptual attenuation.
func wavelengthToRGB(wavelength float32) types.Vec3 {
	var r, g, b, attenuation float32

	switch {
	case wavelength >= 380.0 && wavelength < 440.0:
		attenuation = 0.3 + 0.7*(wavelength-380.0)/(440.0-380.0)
		r = -(wavelength - 440.0) / (440.0 - 380.0) * attenuation
		g = 0.0
		b = 1.0 * attenuation
	case wavelength >= 440.0 && wavelength < 490.0:
		r = 0.0
		g = (wavelength - 440.0) / (490.0 - 440.0)
		b = 1.0
	case wavelength >= 490.0 && wavelength < 510.0:
		r = 0.0
		g = 1.0
		b = -(wavelength - 510.0) / (510.0 - 490.0)
	case wavelength >= 510.0 && wavelength < 580.0:
		r = (wavelength - 510.0) / (580.0 - 510.0)
		g = 1.0
		b = 0.0
	case wavelength >= 580.0 && wavelength < 645.0:
		r = 1.0
		g = -(wavelength - 645.0) / (645.0 - 580.0)
		b = 0.0
	case wavelength >= 645.0 && wavelength <= 780.0:
		attenuation = 0.3 + 0.7*(780.0-wavelength)/(780.0-645.0)
		r = 1.0 * attenuation
		g = 0.0
		b = 0.0
	}

	return types.XYZ(gammaCorrect(r), gammaCorrect(g), gammaCorrect(b))
}

func gammaCorrect(v float32) float32 {
	return float32(math.Pow(float64(v), displayGamma))
}
