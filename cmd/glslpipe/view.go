package main

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/drayder/glslpipe/glcontext"
	"github.com/drayder/glslpipe/options"
)

const cardSize = 256

// Fullscreen quad, position and texture coordinate interleaved.
var quadVertices = []float32{
	-1, 1, 0, 1,
	-1, -1, 0, 0,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	1, -1, 1, 0,
	1, 1, 1, 1,
}

var identity = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// view renders a generated test card through the pipeline. Every pass but
// the last draws into one of two intermediate targets; the last pass draws
// to the window.
type view struct {
	width  int
	height int

	source   uint32
	vbo      uint32
	vaos     []uint32
	fbos     [2]uint32
	textures [2]uint32
}

func newView(opts *options.Options, width, height int) (*view, error) {
	v := &view{width: width, height: height}

	filter := int32(gl.NEAREST)
	if opts.Filter() == options.Linear {
		filter = gl.LINEAR
	}

	pixels := testCard(cardSize)
	gl.GenTextures(1, &v.source)
	gl.BindTexture(gl.TEXTURE_2D, v.source)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, cardSize, cardSize, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	// Attribute locations differ per program, so each pass gets its own VAO.
	for _, pass := range opts.Passes() {
		var vao uint32
		gl.GenVertexArrays(1, &vao)
		gl.BindVertexArray(vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
		if loc := pass.VertexCoord(); loc.Valid() {
			gl.EnableVertexAttribArray(uint32(loc))
			gl.VertexAttribPointer(uint32(loc), 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
		}
		if loc := pass.TexCoord(); loc.Valid() {
			gl.EnableVertexAttribArray(uint32(loc))
			gl.VertexAttribPointer(uint32(loc), 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
		}
		v.vaos = append(v.vaos, vao)
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	for i := 0; i < 2; i++ {
		gl.GenTextures(1, &v.textures[i])
		gl.BindTexture(gl.TEXTURE_2D, v.textures[i])
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

		gl.GenFramebuffers(1, &v.fbos[i])
		gl.BindFramebuffer(gl.FRAMEBUFFER, v.fbos[i])
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, v.textures[i], 0)
		if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
			return nil, fmt.Errorf("framebuffer %d is not complete", i)
		}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return v, nil
}

// Run draws until the window closes, pacing frames when a target framerate
// is configured.
func (v *view) Run(ctx *glcontext.Context, opts *options.Options) {
	var frame int32
	var frameDuration time.Duration
	if opts.RenderBehavior() == options.TargetFramerate && opts.Framerate() > 0 {
		frameDuration = time.Second / time.Duration(opts.Framerate())
	}

	for !ctx.ShouldClose() {
		start := time.Now()
		fbW, fbH := ctx.GetFramebufferSize()
		v.drawFrame(opts.Passes(), fbW, fbH, frame)
		ctx.EndFrame()
		frame++

		if frameDuration > 0 {
			if rest := frameDuration - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
}

func (v *view) drawFrame(passes []*options.Pass, fbW, fbH int, frame int32) {
	input := v.source
	inW, inH := float32(cardSize), float32(cardSize)

	for i, pass := range passes {
		last := i == len(passes)-1
		outW, outH := float32(v.width), float32(v.height)
		if last {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			gl.Viewport(0, 0, int32(fbW), int32(fbH))
			outW, outH = float32(fbW), float32(fbH)
		} else {
			gl.BindFramebuffer(gl.FRAMEBUFFER, v.fbos[i%2])
			gl.Viewport(0, 0, int32(v.width), int32(v.height))
		}
		gl.Clear(gl.COLOR_BUFFER_BIT)

		pass.Bind()
		prog := pass.Program()
		prog.SetMatrix4(pass.MVPMatrix(), &identity)
		prog.SetVec2(pass.InputSize(), inW, inH)
		prog.SetVec2(pass.TextureSize(), inW, inH)
		prog.SetVec2(pass.OutputSize(), outW, outH)
		prog.SetInt(pass.FrameCount(), frame)
		for _, param := range pass.Parameters() {
			prog.SetFloat(param.Binding, param.Value)
		}

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, input)
		gl.BindVertexArray(v.vaos[i])
		gl.DrawArrays(gl.TRIANGLES, 0, 6)

		if !last {
			input = v.textures[i%2]
			inW, inH = float32(v.width), float32(v.height)
		}
	}
	gl.BindVertexArray(0)
}

func (v *view) Release() {
	gl.DeleteTextures(1, &v.source)
	gl.DeleteTextures(2, &v.textures[0])
	gl.DeleteFramebuffers(2, &v.fbos[0])
	gl.DeleteBuffers(1, &v.vbo)
	for i := range v.vaos {
		gl.DeleteVertexArrays(1, &v.vaos[i])
	}
}

// testCard fills a size x size RGBA checkerboard with a color ramp, enough
// structure to make filter and shader effects visible.
func testCard(size int) []uint8 {
	pixels := make([]uint8, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			if (x/16+y/16)%2 == 0 {
				pixels[i+0] = uint8(x)
				pixels[i+1] = uint8(y)
				pixels[i+2] = 0xc0
			} else {
				pixels[i+0] = 0x20
				pixels[i+1] = uint8(255 - x)
				pixels[i+2] = uint8(255 - y)
			}
			pixels[i+3] = 0xff
		}
	}
	return pixels
}
