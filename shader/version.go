package shader

import "regexp"

var versionRe = regexp.MustCompile(`(?m)^\s*(#version\s+\S+)`)

// ExtractVersion removes the first version directive from source and returns
// the stripped source together with the directive text. When no directive is
// present the source comes back unchanged and fallback is used instead.
// Only the first directive is captured and removed; any later ones stay in
// the source.
func ExtractVersion(source, fallback string) (string, string) {
	loc := versionRe.FindStringSubmatchIndex(source)
	if loc == nil {
		return source, fallback
	}
	directive := source[loc[2]:loc[3]]
	return source[:loc[0]] + source[loc[1]:], directive
}
