package options

import (
	"github.com/drayder/glslpipe/graphics"
	"github.com/drayder/glslpipe/preset"
)

// ParameterBinding pairs a resolved uniform location with the value to
// upload before drawing.
type ParameterBinding struct {
	Binding graphics.Binding
	Value   float32
}

// Pass is one compiled and linked vertex+fragment program together with its
// resolved attribute and uniform bindings. Passes are owned by the pipeline
// and released with it.
type Pass struct {
	program graphics.Program
	path    string

	vertexCoord graphics.Binding
	texCoord    graphics.Binding
	color       graphics.Binding
	mvpMatrix   graphics.Binding
	inputSize   graphics.Binding
	outputSize  graphics.Binding
	textureSize graphics.Binding
	frameCount  graphics.Binding

	parameters []ParameterBinding
}

// newPass resolves the fixed binding set and filters params down to the
// names that exist as uniforms in the linked program. Parameters without a
// matching uniform are dropped silently.
func newPass(program graphics.Program, path string, params []preset.ParameterValue) *Pass {
	p := &Pass{
		program:     program,
		path:        path,
		vertexCoord: program.AttribLocation("VertexCoord"),
		texCoord:    program.AttribLocation("TexCoord"),
		color:       program.AttribLocation("Color"),
		mvpMatrix:   program.UniformLocation("MVPMatrix"),
		inputSize:   program.UniformLocation("InputSize"),
		outputSize:  program.UniformLocation("OutputSize"),
		textureSize: program.UniformLocation("TextureSize"),
		frameCount:  program.UniformLocation("FrameCount"),
	}
	for _, param := range params {
		if loc := program.UniformLocation(param.Name); loc.Valid() {
			p.parameters = append(p.parameters, ParameterBinding{Binding: loc, Value: param.Value})
		}
	}
	return p
}

func (p *Pass) Bind()                     { p.program.Bind() }
func (p *Pass) Program() graphics.Program { return p.program }
func (p *Pass) Path() string              { return p.path }

func (p *Pass) VertexCoord() graphics.Binding { return p.vertexCoord }
func (p *Pass) TexCoord() graphics.Binding    { return p.texCoord }
func (p *Pass) Color() graphics.Binding       { return p.color }
func (p *Pass) MVPMatrix() graphics.Binding   { return p.mvpMatrix }
func (p *Pass) InputSize() graphics.Binding   { return p.inputSize }
func (p *Pass) OutputSize() graphics.Binding  { return p.outputSize }
func (p *Pass) TextureSize() graphics.Binding { return p.textureSize }
func (p *Pass) FrameCount() graphics.Binding  { return p.frameCount }

func (p *Pass) Parameters() []ParameterBinding { return p.parameters }

// Release frees the underlying program object.
func (p *Pass) Release() { p.program.Release() }
