package options

import (
	"fmt"

	"github.com/drayder/glslpipe/graphics"
	"github.com/drayder/glslpipe/preset"
	"github.com/drayder/glslpipe/shader"
)

// ShaderBuildError reports a stage compile or program link failure. The
// wrapped error carries the backend's diagnostic log.
type ShaderBuildError struct {
	Path string
	Err  error
}

func (e *ShaderBuildError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error building shader: %v", e.Err)
	}
	return fmt.Sprintf("error building shader %q: %v", e.Path, e.Err)
}

func (e *ShaderBuildError) Unwrap() error { return e.Err }

// assemblePass strips def's source, splices the per-stage headers onto the
// body, compiles both stages and links them into one pass. No partial
// program survives a failure.
func assemblePass(compiler graphics.Compiler, def preset.PassDefinition, defaultVersion string) (*Pass, error) {
	body, _ := shader.ExtractParameters(def.Source)
	body, versionLine := shader.ExtractVersion(body, defaultVersion)

	vertex, err := compiler.CompileStage(graphics.StageVertex,
		shader.StageSource(graphics.StageVertex, versionLine, body))
	if err != nil {
		return nil, &ShaderBuildError{Path: def.Path, Err: err}
	}
	fragment, err := compiler.CompileStage(graphics.StageFragment,
		shader.StageSource(graphics.StageFragment, versionLine, body))
	if err != nil {
		compiler.ReleaseStage(vertex)
		return nil, &ShaderBuildError{Path: def.Path, Err: err}
	}
	program, err := compiler.LinkProgram(vertex, fragment)
	if err != nil {
		return nil, &ShaderBuildError{Path: def.Path, Err: err}
	}
	return newPass(program, def.Path, def.Parameters), nil
}
