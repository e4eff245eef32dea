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

// Package gl32 implements the glpaint driver interface for an OpenGL 3.2
// core profile context. The context itself must have been created and made
// current on the calling goroutine before Start() is called.
package gl32

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/glpaint/glpaint/driver"
	"github.com/glpaint/glpaint/logger"
)

// Driver implements driver.Driver over OpenGL 3.2 core.
type Driver struct{}

// Start initialises the OpenGL function pointers and logs driver
// information. It must be called once, after the GL context has been made
// current, and before any other function in this package.
func Start() (*Driver, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gl32: %w", err)
	}

	logger.Logf(logger.Allow, "gl32", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl32", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl32", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Driver{}, nil
}

// CompileShader implements the driver.Driver interface.
func (drv *Driver) CompileShader(stage driver.Stage, source string) (uint32, error) {
	var typ uint32
	switch stage {
	case driver.StageVertex:
		typ = gl.VERTEX_SHADER
	case driver.StageFragment:
		typ = gl.FRAGMENT_SHADER
	}

	handle := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		err := &driver.CompileError{Stage: stage, Log: shaderLog(handle)}
		gl.DeleteShader(handle)
		return 0, err
	}

	return handle, nil
}

// LinkProgram implements the driver.Driver interface.
func (drv *Driver) LinkProgram(vertex uint32, fragment uint32) (uint32, error) {
	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	var isLinked int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &isLinked)
	if isLinked == 0 {
		err := &driver.LinkError{Log: programLog(handle)}
		gl.DeleteProgram(handle)
		return 0, err
	}

	return handle, nil
}

// shaderLog returns the most recent error generated by the shader compiler.
func shaderLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	// the log length includes the NUL character
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, &logLength, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// programLog returns the most recent error generated by the program linker.
func programLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(handle, logLength, &logLength, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// BindProgram implements the driver.Driver interface.
func (drv *Driver) BindProgram(handle uint32) {
	gl.UseProgram(handle)
}

// AttribLocation implements the driver.Driver interface.
func (drv *Driver) AttribLocation(handle uint32, name string) int32 {
	return gl.GetAttribLocation(handle, gl.Str(name+"\x00"))
}

// UniformLocation implements the driver.Driver interface.
func (drv *Driver) UniformLocation(handle uint32, name string) int32 {
	return gl.GetUniformLocation(handle, gl.Str(name+"\x00"))
}

// EnableVertexAttribArray implements the driver.Driver interface.
func (drv *Driver) EnableVertexAttribArray(slot int32) {
	gl.EnableVertexAttribArray(uint32(slot))
}

// DisableVertexAttribArray implements the driver.Driver interface.
func (drv *Driver) DisableVertexAttribArray(slot int32) {
	gl.DisableVertexAttribArray(uint32(slot))
}

// UniformMatrix4 implements the driver.Driver interface.
func (drv *Driver) UniformMatrix4(slot int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(slot, 1, false, &m[0])
}

// UniformVec2 implements the driver.Driver interface.
func (drv *Driver) UniformVec2(slot int32, v mgl32.Vec2) {
	gl.Uniform2f(slot, v[0], v[1])
}

// UniformFloat implements the driver.Driver interface.
func (drv *Driver) UniformFloat(slot int32, v float32) {
	gl.Uniform1f(slot, v)
}

// UniformInt implements the driver.Driver interface.
func (drv *Driver) UniformInt(slot int32, v int32) {
	gl.Uniform1i(slot, v)
}

// DeleteShader implements the driver.Driver interface.
func (drv *Driver) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

// DeleteProgram implements the driver.Driver interface.
func (drv *Driver) DeleteProgram(handle uint32) {
	gl.DeleteProgram(handle)
}
