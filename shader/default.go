package shader

// Built-in passthrough pass used when nothing is configured or a configured
// shader fails to build. Neither source carries a version directive or
// parameter pragmas, so they compile with just a version line prepended.

const DefaultVertexSource = `in vec2 VertexCoord;
in vec2 TexCoord;
out vec2 tex;
void main() {
    gl_Position = vec4(VertexCoord, 0.0, 1.0);
    tex = TexCoord;
}
`

const DefaultFragmentSource = `in vec2 tex;
uniform sampler2D texsampler;
out vec4 color;
void main() {
    color = texture(texsampler, tex);
}
`
