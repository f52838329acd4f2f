package lighting

import "github.com/go-gl/mathgl/mgl32"

// Uniform names shared by the GLSL programs.
const (
	UniformModel      = "uModel"
	UniformNormal     = "uNormal"
	UniformView       = "uView"
	UniformProjection = "uProjection"

	UniformLightColor = "uLightColor"
	UniformLightPos   = "uLightPos"
	UniformViewPos    = "uViewPos"
	UniformShininess  = "uShininess"
	UniformAmbient    = "uAmbientStrength"
	UniformDiffuse    = "uDiffuseStrength"
	UniformSpecular   = "uSpecularStrength"
)

// MatrixUniforms are required by every program; LitUniforms only by phong.
var (
	MatrixUniforms = []string{UniformModel, UniformView, UniformProjection}
	LitUniforms    = []string{
		UniformNormal, UniformLightColor, UniformLightPos, UniformViewPos,
		UniformShininess, UniformAmbient, UniformDiffuse, UniformSpecular,
	}
)

const (
	DefaultShininess = float32(50)
	MinShininess     = float32(5)
	MaxShininess     = float32(100)
	MinStrength      = float32(0)
	MaxStrength      = float32(1)
)

var (
	DefaultLightColor = mgl32.Vec3{1, 1, 1}
	DefaultLightPos   = mgl32.Vec3{0, 1.5, 0}
	DefaultAmbient    = mgl32.Vec3{0.1, 0.1, 0.1}
	DefaultDiffuse    = mgl32.Vec3{0.3, 0.3, 0.3}
	DefaultSpecular   = mgl32.Vec3{0.6, 0.6, 0.6}
)

// Params are the Phong inputs a lit lab exposes on its panels.
type Params struct {
	LightColor mgl32.Vec3
	LightPos   mgl32.Vec3
	ViewPos    mgl32.Vec3
	Shininess  float32
	Ambient    mgl32.Vec3
	Diffuse    mgl32.Vec3
	Specular   mgl32.Vec3
}

func DefaultParams() Params {
	return Params{
		LightColor: DefaultLightColor,
		LightPos:   DefaultLightPos,
		Shininess:  DefaultShininess,
		Ambient:    DefaultAmbient,
		Diffuse:    DefaultDiffuse,
		Specular:   DefaultSpecular,
	}
}

// Clamp pulls every slider-backed value back into its range.
func (p *Params) Clamp() {
	p.Shininess = mgl32.Clamp(p.Shininess, MinShininess, MaxShininess)
	for i := 0; i < 3; i++ {
		p.Ambient[i] = mgl32.Clamp(p.Ambient[i], MinStrength, MaxStrength)
		p.Diffuse[i] = mgl32.Clamp(p.Diffuse[i], MinStrength, MaxStrength)
		p.Specular[i] = mgl32.Clamp(p.Specular[i], MinStrength, MaxStrength)
	}
}

// Shade evaluates the phong program on the CPU for one point. It mirrors
// phong.fs so the lighting maths can be checked without a GL context.
func (p Params) Shade(pos, normal mgl32.Vec3, base mgl32.Vec3) mgl32.Vec3 {
	ambient := mul(p.Ambient, p.LightColor)

	n := normal.Normalize()
	l := p.LightPos.Sub(pos).Normalize()
	diff := max32(n.Dot(l), 0)
	diffuse := mul(p.LightColor, p.Diffuse).Mul(diff)

	v := p.ViewPos.Sub(pos).Normalize()
	r := reflect(l.Mul(-1), n)
	spec := pow32(max32(v.Dot(r), 0), p.Shininess)
	specular := mul(p.Specular, p.LightColor).Mul(spec)

	return mul(ambient.Add(diffuse).Add(specular), base)
}

func mul(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
