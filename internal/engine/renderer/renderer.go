// Package renderer draws the terrain mesh with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-flight/internal/engine/camera"
	"github.com/Faultbox/terrain-flight/internal/engine/shader"
	"github.com/Faultbox/terrain-flight/internal/engine/terrain"
	"github.com/Faultbox/terrain-flight/internal/logger"
	"github.com/Faultbox/terrain-flight/pkg/math"
)

// Uniform names shared with the terrain shaders.
const (
	uniformProjection = "uProjection"
	uniformModelView  = "uModelView"
	uniformView       = "uView"
	uniformLightPos   = "uLightPos"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Projection camera.Projection
	ClearColor [3]float32
}

// Renderer owns the GL resources for the terrain and the matrices it draws
// with. It satisfies flight.UniformSink.
type Renderer struct {
	config  Config
	program *shader.Program

	vao, vbo, ebo uint32
	indexCount    int32

	view       math.Mat4
	modelView  math.Mat4
	projection math.Mat4

	log *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		view:      math.Identity(),
		modelView: math.Identity(),
		log:       logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)

	var err error
	r.program, err = shader.NewProgram(shader.TerrainVertex, shader.TerrainFragment,
		uniformProjection, uniformModelView, uniformView, uniformLightPos)
	if err != nil {
		return nil, fmt.Errorf("failed to create terrain program: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Upload sends the mesh to the GPU. Called once; the terrain never changes.
func (r *Renderer) Upload(mesh *terrain.Mesh, normals, colors []float32) error {
	vertices, err := Interleave(mesh.Positions, normals, colors)
	if err != nil {
		return err
	}
	if len(mesh.Indices) == 0 {
		return fmt.Errorf("mesh has no indices")
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position, normal, colour
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride*4, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, vertexStride*4, 6*4)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	r.indexCount = int32(len(mesh.Indices))

	r.log.Debug("terrain uploaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int32("indices", r.indexCount),
	)
	return nil
}

// SetView records the view rotation used to place the light.
func (r *Renderer) SetView(view math.Mat4) {
	r.view = view
}

// SetModelView records the model-view matrix for the terrain.
func (r *Renderer) SetModelView(modelView math.Mat4) {
	r.modelView = modelView
}

// RefreshProjection rebuilds the projection for the current viewport.
func (r *Renderer) RefreshProjection() {
	r.projection = r.config.Projection.Matrix(r.config.Width, r.config.Height)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.RefreshProjection()
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the terrain strip lit from light.
func (r *Renderer) Draw(light math.Vec4) {
	if r.indexCount == 0 {
		return
	}

	r.program.Use()
	r.program.SetMat4(uniformProjection, r.projection.Ptr())
	r.program.SetMat4(uniformModelView, r.modelView.Ptr())
	r.program.SetMat4(uniformView, r.view.Ptr())
	r.program.SetVec4(uniformLightPos, light)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLE_STRIP, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}
