// This file is part of GLPaint.
//
// GLPaint is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GLPaint is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GLPaint.  If not, see <https://www.gnu.org/licenses/>.

// The gradientquad demo draws a quad filled with a linear gradient. It
// shows the glpaint activation protocol against a real OpenGL 3.2 context:
// compile once, then per frame Use(), upload uniforms, draw, Remove().
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/glpaint/glpaint"
	"github.com/glpaint/glpaint/driver/gl32"
	"github.com/glpaint/glpaint/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const winWidth = 800
const winHeight = 600

func main() {
	logger.SetEcho(os.Stderr)
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gradientquad: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// the GL context is only valid on the OS thread that created it
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}
	defer sdl.Quit()

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	window, err := sdl.CreateWindow("gradientquad",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		winWidth, winHeight, sdl.WINDOW_OPENGL)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer func() { _ = window.Destroy() }()

	glContext, err := window.GLCreateContext()
	if err != nil {
		return fmt.Errorf("failed to create OpenGL context: %w", err)
	}
	err = window.GLMakeCurrent(glContext)
	if err != nil {
		return fmt.Errorf("failed to set current OpenGL context: %w", err)
	}
	_ = sdl.GLSetSwapInterval(1)

	drv, err := gl32.Start()
	if err != nil {
		return err
	}

	ctx := glpaint.NewContext(drv)
	ctx.StrictGoroutines(true)

	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawLinearGradient)
	if err != nil {
		return err
	}
	defer d.Release()

	vao, vbo := quadGeometry(d)
	defer gl.DeleteVertexArrays(1, &vao)
	defer gl.DeleteBuffers(1, &vbo)

	ramp := rampTexture()
	defer gl.DeleteTextures(1, &ramp)

	// gradient running diagonally across the quad
	start := mgl32.Vec2{0, 0}
	gradient := mgl32.Vec2{winWidth, winHeight}
	gradientLength := 1.0 / float32(math.Hypot(winWidth, winHeight))

	projection := mgl32.Ortho2D(0, winWidth, winHeight, 0)
	screenSpace := mgl32.Ident4()

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				return nil
			}
		}

		gl.ClearColor(0.0, 0.0, 0.0, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// attribute array enable state is part of the vertex array
		// object so the VAO must be bound before Use()
		gl.BindVertexArray(vao)

		err = d.Use()
		if err != nil {
			return err
		}

		d.Set(projection, mgl32.Ident4(), mgl32.Ident4())
		d.SetLinearGradient(screenSpace, start, gradient, gradientLength)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, ramp)
		gl.Uniform1i(d.Gradient.Sampler, 0)

		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

		d.Remove()

		window.GLSwap()
	}
}

// quadGeometry uploads a window filling quad. vertex layout is two
// position floats followed by four color floats, matching the slots
// resolved by the draw program.
func quadGeometry(d *glpaint.DrawProgram) (uint32, uint32) {
	vertices := []float32{
		// x, y, r, g, b, a
		0, 0, 1, 1, 1, 1,
		winWidth, 0, 1, 1, 1, 1,
		0, winHeight, 1, 1, 1, 1,
		winWidth, winHeight, 1, 1, 1, 1,
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.VertexAttribPointerWithOffset(uint32(d.Color.Position), 2, gl.FLOAT, false, stride, 0)
	gl.VertexAttribPointerWithOffset(uint32(d.Color.Color), 4, gl.FLOAT, false, stride, 2*4)

	return vao, vbo
}

// rampTexture builds the 1-D color ramp sampled by the gradient shader.
func rampTexture() uint32 {
	const width = 256

	pixels := make([]uint8, width*4)
	for i := 0; i < width; i++ {
		// blue to orange
		t := float64(i) / float64(width-1)
		pixels[i*4] = uint8(255 * t)
		pixels[i*4+1] = uint8(128 * t)
		pixels[i*4+2] = uint8(255 * (1 - t))
		pixels[i*4+3] = 255
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, 1, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return tex
}
