// Package renderer draws the generated terrain mesh with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/alsid/clap/internal/engine/shader"
	"github.com/alsid/clap/internal/engine/terrain"
	"github.com/alsid/clap/internal/logger"
	"github.com/alsid/clap/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Wireframe bool
}

// Renderer owns the GL state for the terrain mesh: one shader program
// plus a VAO with separate position/normal/UV buffers and an index
// buffer, uploaded once and drawn every frame.
type Renderer struct {
	config Config

	program    uint32
	mvpUniform int32

	vao        uint32
	vbos       [3]uint32 // positions, normals, UVs
	ebo        uint32
	indexCount int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // dark blue-gray sky

	var err error
	r.program, err = shader.CompileProgram(terrainVertexShader, terrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.mvpUniform = shader.MustGetUniform(r.program, "uMVP")

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	for i := range r.vbos {
		if r.vbos[i] != 0 {
			gl.DeleteBuffers(1, &r.vbos[i])
		}
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Aspect returns the current viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	return float32(r.config.Width) / float32(r.config.Height)
}

// UploadMesh pushes the mesh buffers to the GPU, replacing any
// previously uploaded mesh.
func (r *Renderer) UploadMesh(m *terrain.Mesh) {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		gl.DeleteBuffers(3, &r.vbos[0])
		gl.DeleteBuffers(1, &r.ebo)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(3, &r.vbos[0])

	uploadAttrib := func(vbo uint32, location uint32, components int32, data []float32) {
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
		gl.VertexAttribPointer(location, components, gl.FLOAT, false, 0, nil)
		gl.EnableVertexAttribArray(location)
	}
	uploadAttrib(r.vbos[0], 0, 3, m.Positions)
	uploadAttrib(r.vbos[1], 1, 3, m.Normals)
	uploadAttrib(r.vbos[2], 2, 2, m.UVs)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4,
		unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
	r.indexCount = int32(len(m.Indices))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("terrain mesh uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Int32("indices", r.indexCount),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawTerrain draws the uploaded mesh with the given model-view-projection.
func (r *Renderer) DrawTerrain(mvp math.Mat4) {
	if r.indexCount == 0 {
		return
	}

	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpUniform, 1, false, mvp.Ptr())
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

const terrainVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uMVP;

out vec3 vNormal;
out float vHeight;

void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
    vNormal = aNormal;
    vHeight = aPos.y;
}
`

const terrainFragmentShader = `
#version 410 core

in vec3 vNormal;
in float vHeight;

out vec4 FragColor;

void main() {
    vec3 lightDir = normalize(vec3(0.4, 1.0, 0.3));
    float diffuse = max(dot(normalize(vNormal), lightDir), 0.0) * 0.7 + 0.3;

    vec3 low = vec3(0.25, 0.45, 0.2);
    vec3 high = vec3(0.55, 0.5, 0.4);
    vec3 color = mix(low, high, clamp(vHeight / 16.0, 0.0, 1.0));

    FragColor = vec4(color * diffuse, 1.0);
}
`
