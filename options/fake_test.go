package options

import (
	"errors"
	"strings"

	"github.com/drayder/glslpipe/graphics"
)

// fakeCompiler stands in for the GL backend: every linked program exposes
// the configured attribute and uniform names, and compilation fails for any
// source containing failWith.
type fakeCompiler struct {
	attribs  []string
	uniforms []string
	failWith string
	failLink bool

	compiled []string
	released []uint32
	programs []*fakeProgram
	next     uint32
}

func (c *fakeCompiler) CompileStage(stage graphics.Stage, source string) (uint32, error) {
	c.compiled = append(c.compiled, source)
	if c.failWith != "" && strings.Contains(source, c.failWith) {
		return 0, errors.New("failed to compile " + stage.String() + " shader: synthetic error")
	}
	c.next++
	return c.next, nil
}

func (c *fakeCompiler) LinkProgram(vertex, fragment uint32) (graphics.Program, error) {
	if c.failLink {
		return nil, errors.New("failed to link program: synthetic error")
	}
	p := &fakeProgram{
		attribs:  locations(c.attribs),
		uniforms: locations(c.uniforms),
	}
	c.programs = append(c.programs, p)
	return p, nil
}

func (c *fakeCompiler) ReleaseStage(stage uint32) {
	c.released = append(c.released, stage)
}

func locations(names []string) map[string]graphics.Binding {
	m := make(map[string]graphics.Binding, len(names))
	for i, name := range names {
		m[name] = graphics.Binding(i)
	}
	return m
}

type fakeProgram struct {
	attribs  map[string]graphics.Binding
	uniforms map[string]graphics.Binding
	released bool
}

func (p *fakeProgram) Bind() {}

func (p *fakeProgram) AttribLocation(name string) graphics.Binding {
	if b, ok := p.attribs[name]; ok {
		return b
	}
	return graphics.NoBinding
}

func (p *fakeProgram) UniformLocation(name string) graphics.Binding {
	if b, ok := p.uniforms[name]; ok {
		return b
	}
	return graphics.NoBinding
}

func (p *fakeProgram) SetFloat(b graphics.Binding, v float32)        {}
func (p *fakeProgram) SetInt(b graphics.Binding, v int32)            {}
func (p *fakeProgram) SetVec2(b graphics.Binding, x, y float32)      {}
func (p *fakeProgram) SetMatrix4(b graphics.Binding, m *[16]float32) {}

func (p *fakeProgram) Release() { p.released = true }
