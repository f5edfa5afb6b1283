// Package glcompiler implements the graphics compilation interfaces on the
// current OpenGL context.
package glcompiler

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/drayder/glslpipe/graphics"
)

// Compiler compiles GLSL stages with the OpenGL context that is current on
// the calling thread.
type Compiler struct{}

func New() *Compiler { return &Compiler{} }

func (c *Compiler) CompileStage(stage graphics.Stage, source string) (uint32, error) {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == graphics.StageFragment {
		kind = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %v", stage, logText)
	}
	return shader, nil
}

func (c *Compiler) LinkProgram(vertex, fragment uint32) (graphics.Program, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program: %v", logText)
	}
	return &Program{id: program}, nil
}

func (c *Compiler) ReleaseStage(stage uint32) {
	gl.DeleteShader(stage)
}

// Program wraps one linked GL program object.
type Program struct {
	id uint32
}

func (p *Program) ID() uint32 { return p.id }

func (p *Program) Bind() { gl.UseProgram(p.id) }

func (p *Program) AttribLocation(name string) graphics.Binding {
	return graphics.Binding(gl.GetAttribLocation(p.id, gl.Str(name + "\x00")))
}

func (p *Program) UniformLocation(name string) graphics.Binding {
	return graphics.Binding(gl.GetUniformLocation(p.id, gl.Str(name + "\x00")))
}

func (p *Program) SetFloat(b graphics.Binding, v float32) {
	if b.Valid() {
		gl.Uniform1f(int32(b), v)
	}
}

func (p *Program) SetInt(b graphics.Binding, v int32) {
	if b.Valid() {
		gl.Uniform1i(int32(b), v)
	}
}

func (p *Program) SetVec2(b graphics.Binding, x, y float32) {
	if b.Valid() {
		gl.Uniform2f(int32(b), x, y)
	}
}

func (p *Program) SetMatrix4(b graphics.Binding, m *[16]float32) {
	if b.Valid() {
		gl.UniformMatrix4fv(int32(b), 1, false, &m[0])
	}
}

func (p *Program) Release() {
	gl.DeleteProgram(p.id)
}
