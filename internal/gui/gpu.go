package gui

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gfxlab/internal/assets"
	"github.com/san-kum/gfxlab/internal/geometry"
	"github.com/san-kum/gfxlab/internal/lab"
	"github.com/san-kum/gfxlab/internal/lighting"
)

// maxIndexedVertices is the most a mesh may have and still use 16-bit indices.
const maxIndexedVertices = 65535

// toMatrix converts a column-major mgl32 matrix to raylib's layout. Both
// store columns contiguously, so the fields map one to one.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// Program is a linked shader with every uniform it needs resolved.
type Program struct {
	Name     string
	shader   rl.Shader
	material rl.Material
	locs     map[string]int32
}

// LoadProgram compiles an embedded program and resolves the listed uniforms.
// A missing uniform fails the load with a *lab.UniformError.
func LoadProgram(name string, uniforms ...[]string) (*Program, error) {
	vs, fs, err := assets.Program(name)
	if err != nil {
		return nil, err
	}

	shader := rl.LoadShaderFromMemory(vs, fs)
	if !rl.IsShaderValid(shader) {
		return nil, fmt.Errorf("%w: %s", lab.ErrShaderInvalid, name)
	}

	p := &Program{Name: name, shader: shader, locs: make(map[string]int32)}
	for _, group := range uniforms {
		for _, u := range group {
			loc := rl.GetShaderLocation(shader, u)
			if loc == -1 {
				rl.UnloadShader(shader)
				return nil, fmt.Errorf("program %s: %w", name, lab.MissingUniform(u))
			}
			p.locs[u] = loc
		}
	}

	p.material = rl.LoadMaterialDefault()
	p.material.Shader = shader
	return p, nil
}

func (p *Program) Has(uniform string) bool {
	_, ok := p.locs[uniform]
	return ok
}

func (p *Program) SetMat4(uniform string, m mgl32.Mat4) {
	if loc, ok := p.locs[uniform]; ok {
		rl.SetShaderValueMatrix(p.shader, loc, toMatrix(m))
	}
}

func (p *Program) SetVec3(uniform string, v mgl32.Vec3) {
	if loc, ok := p.locs[uniform]; ok {
		rl.SetShaderValue(p.shader, loc, v[:], rl.ShaderUniformVec3)
	}
}

func (p *Program) SetFloat(uniform string, f float32) {
	if loc, ok := p.locs[uniform]; ok {
		rl.SetShaderValue(p.shader, loc, []float32{f}, rl.ShaderUniformFloat)
	}
}

func (p *Program) SetCamera(view, projection mgl32.Mat4) {
	p.SetMat4(lighting.UniformView, view)
	p.SetMat4(lighting.UniformProjection, projection)
}

func (p *Program) SetLighting(l lighting.Params) {
	p.SetVec3(lighting.UniformLightColor, l.LightColor)
	p.SetVec3(lighting.UniformLightPos, l.LightPos)
	p.SetVec3(lighting.UniformViewPos, l.ViewPos)
	p.SetFloat(lighting.UniformShininess, l.Shininess)
	p.SetVec3(lighting.UniformAmbient, l.Ambient)
	p.SetVec3(lighting.UniformDiffuse, l.Diffuse)
	p.SetVec3(lighting.UniformSpecular, l.Specular)
}

// Draw renders m with the given model matrix, plus its normal matrix when
// the program is lit.
func (p *Program) Draw(m *GPUMesh, model mgl32.Mat4) {
	p.SetMat4(lighting.UniformModel, model)
	if p.Has(lighting.UniformNormal) {
		p.SetMat4(lighting.UniformNormal, lighting.NormalMatrix(model))
	}
	rl.DrawMesh(m.mesh, p.material, rl.MatrixIdentity())
}

// Unload frees the material and the shader it owns.
func (p *Program) Unload() {
	rl.UnloadMaterial(p.material)
}

// meshData is a geometry.Mesh in the attribute layout raylib uploads.
type meshData struct {
	positions []float32
	normals   []float32
	texcoords []float32
	colors    []uint8
	indices   []uint16
	vertices  int
	triangles int
}

func toByte(c float32) uint8 {
	return uint8(mgl32.Clamp(c, 0, 1)*255 + 0.5)
}

// flatten converts m, de-indexing it when 16-bit indices cannot address
// every vertex.
func flatten(m *geometry.Mesh) meshData {
	indexed := m.VertexCount() <= maxIndexedVertices
	if !indexed {
		m = m.Expand()
	}

	d := meshData{
		positions: m.Positions,
		normals:   m.Normals,
		texcoords: make([]float32, m.VertexCount()*2),
		colors:    make([]uint8, len(m.Colors)),
		vertices:  m.VertexCount(),
		triangles: m.TriangleCount(),
	}
	for i, c := range m.Colors {
		d.colors[i] = toByte(c)
	}
	if indexed && len(m.Indices) > 0 {
		d.indices = make([]uint16, len(m.Indices))
		for i, idx := range m.Indices {
			d.indices[i] = uint16(idx)
		}
	} else {
		d.triangles = m.VertexCount() / 3
	}
	return d
}

// GPUMesh is a mesh uploaded to vertex buffers. Its arrays live in raylib's
// allocator so UnloadMesh can free them.
type GPUMesh struct {
	mesh      rl.Mesh
	Triangles int
}

func cFloats(src []float32) *float32 {
	if len(src) == 0 {
		return nil
	}
	p := (*float32)(rl.MemAlloc(uint32(len(src) * 4)))
	copy(unsafe.Slice(p, len(src)), src)
	return p
}

func cBytes(src []uint8) *uint8 {
	if len(src) == 0 {
		return nil
	}
	p := (*uint8)(rl.MemAlloc(uint32(len(src))))
	copy(unsafe.Slice(p, len(src)), src)
	return p
}

func cShorts(src []uint16) *uint16 {
	if len(src) == 0 {
		return nil
	}
	p := (*uint16)(rl.MemAlloc(uint32(len(src) * 2)))
	copy(unsafe.Slice(p, len(src)), src)
	return p
}

func Upload(m *geometry.Mesh) (*GPUMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("upload mesh: %w", err)
	}
	d := flatten(m)

	mesh := rl.Mesh{
		VertexCount:   int32(d.vertices),
		TriangleCount: int32(d.triangles),
		Vertices:      cFloats(d.positions),
		Normals:       cFloats(d.normals),
		Texcoords:     cFloats(d.texcoords),
		Colors:        cBytes(d.colors),
		Indices:       cShorts(d.indices),
	}
	rl.UploadMesh(&mesh, false)
	return &GPUMesh{mesh: mesh, Triangles: d.triangles}, nil
}

func (g *GPUMesh) Unload() {
	rl.UnloadMesh(&g.mesh)
}

// UploadAll uploads every mesh, unloading the ones already sent if a later
// one fails.
func UploadAll(meshes ...*geometry.Mesh) ([]*GPUMesh, error) {
	out := make([]*GPUMesh, 0, len(meshes))
	for _, m := range meshes {
		g, err := Upload(m)
		if err != nil {
			unloadAll(out)
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func unloadAll(meshes []*GPUMesh) {
	for _, m := range meshes {
		m.Unload()
	}
}
