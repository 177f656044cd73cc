package world

import (
	"math"
	"math/bits"
	"math/rand"
)

// simplexNoise is seeded 2D simplex noise with output in roughly [-1, 1].
type simplexNoise struct {
	perm [512]uint8
}

var simplexGrad = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

func newSimplexNoise(seed uint32) *simplexNoise {
	n := &simplexNoise{}
	var table [256]uint8
	for i := range table {
		table[i] = uint8(i)
	}
	rng := rand.New(rand.NewSource(int64(seed)))
	rng.Shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})
	for i := 0; i < 512; i++ {
		n.perm[i] = table[i&255]
	}
	return n
}

const (
	simplexSkew   = 0.3660254037844386  // (sqrt(3)-1)/2
	simplexUnskew = 0.21132486540518713 // (3-sqrt(3))/6
)

// Get evaluates the noise at a point.
func (n *simplexNoise) Get(x, y float64) float64 {
	s := (x + y) * simplexSkew
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	t := (i + j) * simplexUnskew
	x0 := x - (i - t)
	y0 := y - (j - t)

	var i1, j1 float64
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}
	x1 := x0 - i1 + simplexUnskew
	y1 := y0 - j1 + simplexUnskew
	x2 := x0 - 1 + 2*simplexUnskew
	y2 := y0 - 1 + 2*simplexUnskew

	ii := int(i) & 255
	jj := int(j) & 255

	contribution := func(x, y float64, gi uint8) float64 {
		t := 0.5 - x*x - y*y
		if t < 0 {
			return 0
		}
		t *= t
		g := simplexGrad[gi&7]
		return t * t * (g[0]*x + g[1]*y)
	}

	total := contribution(x0, y0, n.perm[ii+int(n.perm[jj])])
	total += contribution(x1, y1, n.perm[ii+int(i1)+int(n.perm[jj+int(j1)])])
	total += contribution(x2, y2, n.perm[ii+1+int(n.perm[jj+1])])

	// Scaled so the extremes land near ±1.
	return 70 * total
}

type fractalNoiseLayer struct {
	amplitude   float64
	scale       float64
	translation float64
	noise       *simplexNoise
}

// FractalNoise sums progressively finer simplex layers. Layer k runs at
// half the amplitude and half the coordinate scale of layer k-1, with a
// half-period translation so layer features do not align, and a seed
// derived by rotating the base seed. The sum is normalized back to the
// amplitude of a single layer.
type FractalNoise struct {
	layers          []fractalNoiseLayer
	inverseScaleSum float64
}

// NewFractalNoise builds a fractal noise generator. layers must be at
// least 1.
func NewFractalNoise(seed uint32, layers int, noiseScale float64) *FractalNoise {
	if layers < 1 {
		layers = 1
	}
	sum := 1.0 - math.Pow(0.5, float64(layers))
	f := &FractalNoise{
		layers:          make([]fractalNoiseLayer, 0, layers),
		inverseScaleSum: 1.0 / sum,
	}
	for k := 0; k < layers; k++ {
		amplitude := math.Pow(0.5, float64(k))
		scale := noiseScale * amplitude
		f.layers = append(f.layers, fractalNoiseLayer{
			amplitude:   amplitude,
			scale:       scale,
			translation: 0.5 * scale,
			noise:       newSimplexNoise(bits.RotateLeft32(seed, k)),
		})
	}
	return f
}

// Get evaluates the fractal noise at a point, returning a value in
// roughly [-1, 1].
func (f *FractalNoise) Get(x, y float64) float64 {
	var total float64
	for _, layer := range f.layers {
		px := x*layer.scale + layer.translation
		py := y*layer.scale + layer.translation
		total += layer.noise.Get(px, py) * layer.amplitude
	}
	return total * f.inverseScaleSum
}
