package rubik

import "github.com/go-gl/mathgl/mgl32"

// Mat3i is an integer rotation matrix, indexed [row][col].
type Mat3i [3][3]int

func Ident3i() Mat3i {
	return Mat3i{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// QuarterTurn is the rotation by sign*90 degrees about axis.
func QuarterTurn(axis Axis, sign int) Mat3i {
	s := sign
	switch axis {
	case AxisX:
		return Mat3i{{1, 0, 0}, {0, 0, -s}, {0, s, 0}}
	case AxisY:
		return Mat3i{{0, 0, s}, {0, 1, 0}, {-s, 0, 0}}
	default:
		return Mat3i{{0, -s, 0}, {s, 0, 0}, {0, 0, 1}}
	}
}

func (m Mat3i) Mul(o Mat3i) Mat3i {
	var r Mat3i
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

func (m Mat3i) Apply(v [3]int) [3]int {
	return [3]int{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat3i) IsIdentity() bool {
	return m == Ident3i()
}

// Mat4 embeds m into a homogeneous column-major matrix.
func (m Mat3i) Mat4() mgl32.Mat4 {
	var out mgl32.Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c*4+r] = float32(m[r][c])
		}
	}
	out[15] = 1
	return out
}

// turnPosition moves a logical position through one quarter turn.
func turnPosition(p [3]int, axis Axis, dir Direction) [3]int {
	x, y, z := p[0], p[1], p[2]
	s := dir.Sign()
	switch axis {
	case AxisX:
		return [3]int{x, -s * z, s * y}
	case AxisY:
		return [3]int{s * z, y, -s * x}
	default:
		return [3]int{-s * y, s * x, z}
	}
}
