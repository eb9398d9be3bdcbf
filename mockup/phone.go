// Package mockup builds the phone model rendered by the configurator.
//
// The phone is a labeled surface point cloud, sampled from a rounded box
// with a screen on the front and a camera module on the back.
package mockup

import (
	"errors"
	"math"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

const (
	LabelBody uint32 = iota
	LabelScreen
	LabelCamera
)

// Dimensions of the phone in millimeters.
type Dimensions struct {
	Width, Height, Depth float32
	CornerRadius         float32
	Bezel                float32

	// Camera module center, measured from the top left corner seen from
	// the back.
	CameraOffset mat.Vec3
	CameraRadius float32
}

// DefaultDimensions fit a 76 x 161 screen with 12mm corners.
var DefaultDimensions = Dimensions{
	Width:        78,
	Height:       163,
	Depth:        8.25,
	CornerRadius: 13,
	Bezel:        1,
	CameraOffset: mat.Vec3{20, 20, 0},
	CameraRadius: 15,
}

var ErrInvalidDimensions = errors.New("invalid phone dimensions")

// Phone is a sampled phone surface.
type Phone struct {
	Dimensions

	Cloud   *pc.PointCloud
	Normals []mat.Vec3
}

// ScreenSize returns the size of the display area.
func (d Dimensions) ScreenSize() (float32, float32) {
	return d.Width - 2*d.Bezel, d.Height - 2*d.Bezel
}

func insideRoundedRect(x, y, hw, hh, r float32) bool {
	ax, ay := float32(math.Abs(float64(x))), float32(math.Abs(float64(y)))
	if ax > hw || ay > hh {
		return false
	}
	dx, dy := ax-(hw-r), ay-(hh-r)
	if dx <= 0 || dy <= 0 {
		return true
	}
	return dx*dx+dy*dy <= r*r
}

// outline returns points and outward normals along a rounded rectangle,
// spaced by step.
func outline(hw, hh, r, step float32) ([]mat.Vec3, []mat.Vec3) {
	var pp, nn []mat.Vec3
	line := func(x0, y0, x1, y1 float32, n mat.Vec3) {
		l := float32(math.Hypot(float64(x1-x0), float64(y1-y0)))
		cnt := int(l / step)
		for i := 0; i < cnt; i++ {
			t := float32(i) / float32(cnt)
			pp = append(pp, mat.Vec3{x0 + (x1-x0)*t, y0 + (y1-y0)*t, 0})
			nn = append(nn, n)
		}
	}
	arc := func(cx, cy, a0 float32) {
		cnt := int(float32(math.Pi/2) * r / step)
		if cnt < 1 {
			cnt = 1
		}
		for i := 0; i < cnt; i++ {
			a := float64(a0) + math.Pi/2*float64(i)/float64(cnt)
			s, c := math.Sincos(a)
			pp = append(pp, mat.Vec3{cx + r*float32(c), cy + r*float32(s), 0})
			nn = append(nn, mat.Vec3{float32(c), float32(s), 0})
		}
	}
	line(hw, -hh+r, hw, hh-r, mat.Vec3{1, 0, 0})
	arc(hw-r, hh-r, 0)
	line(hw-r, hh, -hw+r, hh, mat.Vec3{0, 1, 0})
	arc(-hw+r, hh-r, math.Pi/2)
	line(-hw, hh-r, -hw, -hh+r, mat.Vec3{-1, 0, 0})
	arc(-hw+r, -hh+r, math.Pi)
	line(-hw+r, -hh, hw-r, -hh, mat.Vec3{0, -1, 0})
	arc(hw-r, -hh+r, 3*math.Pi/2)
	return pp, nn
}

type sample struct {
	p, n  mat.Vec3
	label uint32
}

// NewPhone samples the phone surface with the given point spacing.
// The phone is centered at the origin with the screen facing +Z.
func NewPhone(d Dimensions, step float32) (*Phone, error) {
	if d.Width <= 0 || d.Height <= 0 || d.Depth <= 0 || step <= 0 ||
		d.CornerRadius < 0 || 2*d.CornerRadius > d.Width || 2*d.CornerRadius > d.Height {
		return nil, ErrInvalidDimensions
	}
	hw, hh, hd := d.Width/2, d.Height/2, d.Depth/2
	sw, sh := d.ScreenSize()
	sr := d.CornerRadius - d.Bezel
	if sr < 0 {
		sr = 0
	}
	cam := mat.Vec3{hw - d.CameraOffset[0], hh - d.CameraOffset[1], 0}

	var samples []sample
	for y := -hh; y <= hh; y += step {
		for x := -hw; x <= hw; x += step {
			if !insideRoundedRect(x, y, hw, hh, d.CornerRadius) {
				continue
			}
			front := LabelBody
			if insideRoundedRect(x, y, sw/2, sh/2, sr) {
				front = LabelScreen
			}
			samples = append(samples, sample{
				p: mat.Vec3{x, y, hd}, n: mat.Vec3{0, 0, 1}, label: front,
			})

			back := LabelBody
			if dx, dy := x-cam[0], y-cam[1]; dx*dx+dy*dy <= d.CameraRadius*d.CameraRadius {
				back = LabelCamera
			}
			samples = append(samples, sample{
				p: mat.Vec3{x, y, -hd}, n: mat.Vec3{0, 0, -1}, label: back,
			})
		}
	}
	pp, nn := outline(hw, hh, d.CornerRadius, step)
	for z := -hd + step/2; z < hd; z += step {
		for i, p := range pp {
			samples = append(samples, sample{
				p: mat.Vec3{p[0], p[1], z}, n: nn[i], label: LabelBody,
			})
		}
	}

	cloud := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Fields: []string{"x", "y", "z", "label"},
			Size:   []int{4, 4, 4, 4},
			Type:   []string{"F", "F", "F", "U"},
			Count:  []int{1, 1, 1, 1},
			Width:  len(samples),
			Height: 1,
		},
		Points: len(samples),
	}
	cloud.Data = make([]byte, len(samples)*cloud.Stride())

	it, err := cloud.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	itL, err := cloud.Uint32Iterator("label")
	if err != nil {
		return nil, err
	}
	normals := make([]mat.Vec3, 0, len(samples))
	for _, s := range samples {
		it.SetVec3(s.p)
		itL.SetUint32(s.label)
		it.Incr()
		itL.Incr()
		normals = append(normals, s.n)
	}

	return &Phone{
		Dimensions: d,
		Cloud:      cloud,
		Normals:    normals,
	}, nil
}

// Bounds returns the axis aligned bounding box of the sampled surface.
func (p *Phone) Bounds() (mat.Vec3, mat.Vec3, error) {
	it, err := p.Cloud.Vec3Iterator()
	if err != nil {
		return mat.Vec3{}, mat.Vec3{}, err
	}
	return pc.MinMaxVec3(it)
}

// Corners returns the eight corners of the bounding box.
func (p *Phone) Corners() ([8]mat.Vec3, error) {
	min, max, err := p.Bounds()
	if err != nil {
		return [8]mat.Vec3{}, err
	}
	var out [8]mat.Vec3
	for i := range out {
		for a := 0; a < 3; a++ {
			if i&(1<<a) == 0 {
				out[i][a] = min[a]
			} else {
				out[i][a] = max[a]
			}
		}
	}
	return out, nil
}

// NormalData returns the normals as a flat vertex buffer.
func (p *Phone) NormalData() []float32 {
	buf := make([]float32, 0, len(p.Normals)*3)
	for _, n := range p.Normals {
		buf = append(buf, n[0], n[1], n[2])
	}
	return buf
}

// Count returns the number of points with the label.
func (p *Phone) Count(label uint32) int {
	it, err := p.Cloud.Vec3Iterator()
	if err != nil {
		return 0
	}
	itL, err := p.Cloud.Uint32Iterator("label")
	if err != nil {
		return 0
	}
	var n int
	for ; it.IsValid(); it.Incr() {
		if itL.Uint32() == label {
			n++
		}
		itL.Incr()
	}
	return n
}
