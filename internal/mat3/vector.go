package mat3

import (
	"fmt"
	"log/slog"
	"math"
)

// Vector is a 3-component color vector.
//
// A Vector either owns its three elements or is a view into a row or column
// of a Matrix, described by a backing slice, an offset and a stride. Writes
// through a view modify the matrix in place. Both forms share every method;
// the representation is a plain struct so calls dispatch statically.
//
// Vectors are small values and are passed by value. Copying a view still
// refers to the same matrix storage; use Copy to detach.
type Vector struct {
	data   []float64
	off    int
	stride int
	view   bool
}

// NewVector returns an owned vector holding (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{data: []float64{x, y, z}, stride: 1}
}

// ZeroVector returns an owned vector of zeros.
func ZeroVector() Vector {
	return Vector{data: make([]float64, 3), stride: 1}
}

// newView returns a view into data starting at off with the given stride.
func newView(data []float64, off, stride int) Vector {
	return Vector{data: data, off: off, stride: stride, view: true}
}

// IsView reports whether v aliases matrix storage.
func (v Vector) IsView() bool {
	return v.view
}

// At returns component i (0, 1 or 2).
func (v Vector) At(i int) float64 {
	return v.data[v.off+i*v.stride]
}

// Set assigns component i.
func (v Vector) Set(i int, x float64) {
	v.data[v.off+i*v.stride] = x
}

// XYZ returns the three components.
func (v Vector) XYZ() (x, y, z float64) {
	s := v.stride
	return v.data[v.off], v.data[v.off+s], v.data[v.off+2*s]
}

// SetXYZ assigns all three components.
func (v Vector) SetXYZ(x, y, z float64) {
	s := v.stride
	v.data[v.off] = x
	v.data[v.off+s] = y
	v.data[v.off+2*s] = z
}

// Array returns the components as an array.
func (v Vector) Array() [3]float64 {
	x, y, z := v.XYZ()
	return [3]float64{x, y, z}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	ax, ay, az := v.XYZ()
	bx, by, bz := o.XYZ()
	return ax*bx + ay*by + az*bz
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize scales v to unit length in place. A zero vector is left as is.
func (v Vector) Normalize() {
	m := v.Magnitude()
	if m == 0 {
		return
	}
	x, y, z := v.XYZ()
	v.SetXYZ(x/m, y/m, z/m)
}

// Swap exchanges the contents of v and o.
func (v Vector) Swap(o Vector) {
	ax, ay, az := v.XYZ()
	bx, by, bz := o.XYZ()
	v.SetXYZ(bx, by, bz)
	o.SetXYZ(ax, ay, az)
}

// Copy returns an owned copy of v.
func (v Vector) Copy() Vector {
	x, y, z := v.XYZ()
	return NewVector(x, y, z)
}

// CopyFrom overwrites v with the contents of o.
func (v Vector) CopyFrom(o Vector) {
	v.SetXYZ(o.XYZ())
}

// Equal compares v and o component-wise using eq.
func (v Vector) Equal(o Vector, eq Comparer) bool {
	ax, ay, az := v.XYZ()
	bx, by, bz := o.XYZ()
	return eq(ax, bx) && eq(ay, by) && eq(az, bz)
}

// String formats v as (x, y, z).
func (v Vector) String() string {
	x, y, z := v.XYZ()
	return fmt.Sprintf("(%g, %g, %g)", x, y, z)
}

// LogValue formats v lazily for slog.
func (v Vector) LogValue() slog.Value {
	return slog.StringValue(v.String())
}
