package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// NormalMatrix is transpose(inverse(M)) of the model matrix with its
// translation dropped. It is returned embedded in a Mat4 so it can travel
// through a mat4 uniform; shaders take mat3() of it.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat4 {
	linear := model.Mat3().Mat4()
	return linear.Inv().Transpose()
}

// NormalMatrix3 is the 3x3 form of NormalMatrix.
func NormalMatrix3(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}

func pow32(x, y float32) float32 {
	return math32.Pow(x, y)
}
