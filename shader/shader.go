// Package shader compiles GLSL source files into a GL program and uploads
// uniforms through a name-to-location cache. Failures on this path are
// recoverable by design: a missing source file or a compiler diagnostic is
// logged and the program degrades to a do-nothing pipeline stage instead of
// aborting the application.
package shader

import (
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwrona/glimmer"
)

// Program owns one GL program handle and its uniform location cache.
type Program struct {
	id uint32

	// uniform name -> location; a name the program does not expose is cached
	// as the driver's -1 sentinel and never re-queried
	uniforms map[string]int32
}

// Option adjusts program construction.
type Option func(*config)

type config struct {
	geometryPath string
}

// WithGeometry adds a geometry stage compiled from the given source file.
func WithGeometry(path string) Option {
	return func(c *config) { c.geometryPath = path }
}

// New compiles and links a program from the vertex and fragment source files.
// Construction always yields a usable Program value: source and compile
// problems are logged as warnings and leave the corresponding stage empty.
func New(vertexPath, fragmentPath string, opts ...Option) *Program {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Program{uniforms: make(map[string]int32)}

	vertex := compile(readSource(vertexPath), gl.VERTEX_SHADER, "vertex")
	fragment := compile(readSource(fragmentPath), gl.FRAGMENT_SHADER, "fragment")

	p.id = gl.CreateProgram()
	gl.AttachShader(p.id, vertex)
	gl.AttachShader(p.id, fragment)

	var geometry uint32
	if cfg.geometryPath != "" {
		geometry = compile(readSource(cfg.geometryPath), gl.GEOMETRY_SHADER, "geometry")
		gl.AttachShader(p.id, geometry)
	}

	gl.LinkProgram(p.id)

	var status int32
	gl.GetProgramiv(p.id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.id, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.id, logLength, nil, gl.Str(infoLog))
		glimmer.Logger().Warn("failed to link program",
			"vertex", vertexPath, "fragment", fragmentPath,
			"log", strings.TrimRight(infoLog, "\x00"))
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)
	if geometry != 0 {
		gl.DeleteShader(geometry)
	}

	return p
}

// Use binds the program as the active pipeline stage.
func (p *Program) Use() { gl.UseProgram(p.id) }

// Unuse deactivates the program.
func (p *Program) Unuse() { gl.UseProgram(0) }

// SetMat4 uploads a 4x4 matrix to the named uniform.
func (p *Program) SetMat4(name string, transpose bool, m mgl32.Mat4) {
	p.Use()
	gl.UniformMatrix4fv(p.location(name), 1, transpose, &m[0])
}

// SetVec4 uploads a vec4 to the named uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	p.Use()
	gl.Uniform4fv(p.location(name), 1, &v[0])
}

// SetVec3 uploads a vec3 to the named uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	p.Use()
	gl.Uniform3fv(p.location(name), 1, &v[0])
}

// SetVec2 uploads a vec2 to the named uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	p.Use()
	gl.Uniform2fv(p.location(name), 1, &v[0])
}

// SetFloat uploads a float to the named uniform.
func (p *Program) SetFloat(name string, v float32) {
	p.Use()
	gl.Uniform1f(p.location(name), v)
}

// SetInt uploads an int to the named uniform.
func (p *Program) SetInt(name string, v int32) {
	p.Use()
	gl.Uniform1i(p.location(name), v)
}

// SetBool uploads a bool to the named uniform as 0 or 1.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

// Release deletes the program handle. Safe to call more than once.
func (p *Program) Release() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// location resolves a uniform name, consulting the driver once per name for
// the lifetime of the program. Unknown names resolve to -1, which the
// Uniform* calls ignore.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// readSource reads a GLSL source file. A missing or unreadable file logs a
// warning and yields an empty source, which is still submitted to the
// compiler so the failure surfaces in one place.
func readSource(path string) string {
	src, err := os.ReadFile(path)
	if err != nil {
		glimmer.Logger().Warn("failed to read shader source", "path", path, "err", err)
		return ""
	}
	return string(src)
}

// compile compiles one shader stage, logging the driver diagnostic on
// failure. The (empty) shader object is returned either way so the link step
// can proceed and degrade.
func compile(source string, xtype uint32, stage string) uint32 {
	shader := gl.CreateShader(xtype)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		glimmer.Logger().Warn("failed to compile shader",
			"stage", stage, "log", strings.TrimRight(infoLog, "\x00"))
	}
	return shader
}
