// Package shader prepares GLSL source text for compilation: it extracts
// parameter pragmas and version directives and splices the per-stage header
// onto the remaining body.
package shader

import (
	"regexp"
	"strconv"
	"strings"
)

// Parameter is one tunable declared by a "#pragma parameter" line. The
// bounds and step are informational; nothing in this package clamps values
// to them.
type Parameter struct {
	Name        string
	Description string
	Initial     float32
	Minimum     float32
	Maximum     float32
	Step        float32
	HasStep     bool
}

// Parameter lines have the form:
//
//	#pragma parameter IDENTIFIER "DESCRIPTION" INITIAL MINIMUM MAXIMUM [STEP]
var parameterRe = regexp.MustCompile(`(?m)^\s*#pragma\s+parameter\s+(\w+)\s+"(.+)"\s+(-?[.\d]+)\s+(-?[.\d]+)\s+(-?[.\d]+)(\s+-?[.\d]+)?.*?\n`)

// ExtractParameters returns source with every parameter pragma line removed,
// plus the declarations in source order. Lines that do not match the pragma
// grammar are left untouched.
func ExtractParameters(source string) (string, []Parameter) {
	var params []Parameter
	for _, m := range parameterRe.FindAllStringSubmatch(source, -1) {
		p := Parameter{
			Name:        m[1],
			Description: m[2],
			Initial:     toFloat(m[3]),
			Minimum:     toFloat(m[4]),
			Maximum:     toFloat(m[5]),
		}
		if step := strings.TrimSpace(m[6]); step != "" {
			p.Step = toFloat(step)
			p.HasStep = true
		}
		params = append(params, p)
	}
	return parameterRe.ReplaceAllString(source, ""), params
}

// A token can match the numeric pattern yet fail to parse (e.g. "-."); it
// reads as 0 rather than failing the whole declaration.
func toFloat(s string) float32 {
	f, _ := strconv.ParseFloat(s, 32)
	return float32(f)
}
