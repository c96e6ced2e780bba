package vecmath

import "math"

// Mat4 is a row-major 4x4 matrix: M[row][col].
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += m[i][k] * o[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// Transform applies m to the point p (w = 1) and returns the homogeneous result.
func (m Mat4) Transform(p Vec3) (x, y, z, w float64) {
	x = m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y = m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z = m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w = m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	return x, y, z, w
}

// LookAt builds a view matrix with gluLookAt semantics.
func LookAt(eye, center, up Vec3) (Mat4, error) {
	f, err := center.Sub(eye).Normalize()
	if err != nil {
		return Identity(), err
	}
	s, err := f.Cross(up).Normalize()
	if err != nil {
		return Identity(), err
	}
	u := s.Cross(f)
	return Mat4{
		{s.X, s.Y, s.Z, -s.Dot(eye)},
		{u.X, u.Y, u.Z, -u.Dot(eye)},
		{-f.X, -f.Y, -f.Z, f.Dot(eye)},
		{0, 0, 0, 1},
	}, nil
}

// Perspective builds a projection matrix with gluPerspective semantics.
// fovy is in degrees.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(Deg2Rad(fovy)/2)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), 2 * far * near / (near - far)},
		{0, 0, -1, 0},
	}
}
