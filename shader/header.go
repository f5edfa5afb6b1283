package shader

import (
	"strings"

	"github.com/drayder/glslpipe/graphics"
)

// DefaultVersion is the version directive used for sources that do not carry
// their own when the caller has no better choice.
const DefaultVersion = "#version 330 core"

// StageSource builds the final compilable text for one stage: the fixed
// header followed by the stripped body. The #line reset keeps driver
// diagnostics numbered from line 1 of the body.
func StageSource(stage graphics.Stage, versionLine, body string) string {
	header := []string{
		versionLine,
		"#extension GL_ARB_shading_language_420pack : enable",
		stage.Macro(),
		"#define PARAMETER_UNIFORM",
		"#line 1",
		"",
	}
	return strings.Join(header, "\n") + body
}
