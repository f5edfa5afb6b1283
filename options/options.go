// Package options holds the render policy settings and the compiled shader
// pipeline they govern.
package options

import (
	"github.com/drayder/glslpipe/config"
	"github.com/drayder/glslpipe/graphics"
	"github.com/drayder/glslpipe/preset"
	"github.com/drayder/glslpipe/shader"
)

// RenderBehavior selects how frame pacing is driven.
type RenderBehavior int

const (
	SyncWithVideo RenderBehavior = iota
	TargetFramerate
)

// Filter selects how the output texture is sampled.
type Filter int

const (
	Nearest Filter = iota
	Linear
)

// Options is the render options aggregate: pacing policy, vsync, filter mode
// and the ordered shader pipeline. Passes render in insertion order.
type Options struct {
	behavior  RenderBehavior
	framerate int
	vsync     bool
	filter    Filter
	passes    []*Pass

	cfg            *config.Video
	compiler       graphics.Compiler
	defaultVersion string
}

// New builds the aggregate. With loadConfig set, vsync, framerate, pacing
// behavior and filter mode come from cfg and the configured shader path is
// loaded; any failure along that path discards the partial pipeline and
// falls back to the built-in default pass, so construction never surfaces a
// load error. The returned error is non-nil only when the built-in pass
// itself fails to compile. Without loadConfig the pipeline starts empty and
// shaders are added explicitly.
func New(cfg *config.Video, loadConfig bool, defaultVersion string, compiler graphics.Compiler) (*Options, error) {
	o := &Options{
		behavior:       SyncWithVideo,
		framerate:      -1,
		cfg:            cfg,
		compiler:       compiler,
		defaultVersion: defaultVersion,
	}
	o.filter = o.Filter()

	if !loadConfig {
		return o, nil
	}

	o.vsync = cfg.VSync != 0
	o.framerate = cfg.Framerate
	if cfg.Framerate == -1 {
		o.behavior = SyncWithVideo
	} else {
		o.behavior = TargetFramerate
	}

	if cfg.ShaderPath == "" {
		return o, o.AddDefaultShader()
	}
	if err := o.AddShader(cfg.ShaderPath); err != nil || len(o.passes) == 0 {
		return o, o.AddDefaultShader()
	}
	return o, nil
}

// AddShader loads the preset or raw shader at path and appends its passes to
// the pipeline in declaration order. The pipeline grows only when every pass
// builds; on failure it is left exactly as it was and the error propagates
// to the caller.
func (o *Options) AddShader(path string) error {
	defs, err := preset.Load(path)
	if err != nil {
		return err
	}
	built := make([]*Pass, 0, len(defs))
	for _, def := range defs {
		pass, err := assemblePass(o.compiler, def, o.defaultVersion)
		if err != nil {
			for _, p := range built {
				p.Release()
			}
			return err
		}
		built = append(built, pass)
	}
	o.passes = append(o.passes, built...)
	return nil
}

// AddShaderSource assembles one pass from in-memory source text and appends
// it to the pipeline.
func (o *Options) AddShaderSource(source, path string, parameters []preset.ParameterValue) error {
	pass, err := assemblePass(o.compiler, preset.PassDefinition{
		Source:     source,
		Path:       path,
		Parameters: parameters,
	}, o.defaultVersion)
	if err != nil {
		return err
	}
	o.passes = append(o.passes, pass)
	return nil
}

// AddDefaultShader appends the built-in passthrough pass. The built-in
// sources carry no version directive or pragmas, so the version line is
// prepended as-is.
func (o *Options) AddDefaultShader() error {
	vertex, err := o.compiler.CompileStage(graphics.StageVertex,
		o.defaultVersion+"\n"+shader.DefaultVertexSource)
	if err != nil {
		return &ShaderBuildError{Err: err}
	}
	fragment, err := o.compiler.CompileStage(graphics.StageFragment,
		o.defaultVersion+"\n"+shader.DefaultFragmentSource)
	if err != nil {
		o.compiler.ReleaseStage(vertex)
		return &ShaderBuildError{Err: err}
	}
	program, err := o.compiler.LinkProgram(vertex, fragment)
	if err != nil {
		return &ShaderBuildError{Err: err}
	}
	o.passes = append(o.passes, newPass(program, "", nil))
	return nil
}

func (o *Options) RenderBehavior() RenderBehavior { return o.behavior }
func (o *Options) Framerate() int                 { return o.framerate }
func (o *Options) VSync() bool                    { return o.vsync }
func (o *Options) Passes() []*Pass                { return o.passes }

// Filter reads the externally governed filter method live; it is shared
// state, not a cached field.
func (o *Options) Filter() Filter {
	if o.cfg.FilterMethod == 0 {
		return Nearest
	}
	return Linear
}

func (o *Options) SetRenderBehavior(v RenderBehavior) { o.behavior = v }
func (o *Options) SetFramerate(v int)                 { o.framerate = v }
func (o *Options) SetVSync(v bool)                    { o.vsync = v }
func (o *Options) SetFilter(v Filter)                 { o.filter = v }

// Save writes the current settings back to the persisted configuration. The
// framerate field doubles as the pacing selector: -1 means sync with video.
func (o *Options) Save() {
	if o.vsync {
		o.cfg.VSync = 1
	} else {
		o.cfg.VSync = 0
	}
	if o.behavior == SyncWithVideo {
		o.cfg.Framerate = -1
	} else {
		o.cfg.Framerate = o.framerate
	}
	if o.filter == Nearest {
		o.cfg.FilterMethod = 0
	} else {
		o.cfg.FilterMethod = 1
	}

	// TODO: persist every pass, not just the first
	if len(o.passes) > 0 {
		o.cfg.ShaderPath = o.passes[0].Path()
	} else {
		o.cfg.ShaderPath = ""
	}
}

// Release frees every compiled pass. The aggregate is unusable afterwards.
func (o *Options) Release() {
	for _, p := range o.passes {
		p.Release()
	}
	o.passes = nil
}
