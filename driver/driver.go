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

// Package driver defines the narrow interface through which the glpaint
// package talks to a graphics context. The production implementation is in
// the gl32 sub-package. Tests substitute an instrumented implementation.
//
// All operations are synchronous and must be called from the goroutine that
// owns the underlying graphics context. The interface provides no locking.
package driver

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Stage identifies one of the two shader stages of a program.
type Stage int

// List of valid Stage values.
const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return "unknown stage"
}

// NoSlot is returned by AttribLocation and UniformLocation when the named
// input is not present in the linked program. A shader compiler is free to
// optimise away inputs that contribute nothing to the output so receiving
// NoSlot is not an error. Callers must check for NoSlot before using a slot
// to bind data.
const NoSlot = int32(-1)

// Driver is the connection to a graphics context. Handles returned by
// CompileShader and LinkProgram are opaque to the glpaint package and are
// only ever passed back to the Driver that created them.
type Driver interface {
	// CompileShader compiles source text for the given stage. Failure is
	// reported with *CompileError.
	CompileShader(stage Stage, source string) (uint32, error)

	// LinkProgram links previously compiled vertex and fragment shaders
	// into a program. Failure is reported with *LinkError.
	LinkProgram(vertex uint32, fragment uint32) (uint32, error)

	// BindProgram makes the program the active program on the context.
	BindProgram(handle uint32)

	// AttribLocation returns the slot for a named per-vertex input, or
	// NoSlot if the name is not present in the linked program.
	AttribLocation(handle uint32, name string) int32

	// UniformLocation returns the slot for a named per-draw input, or
	// NoSlot if the name is not present in the linked program.
	UniformLocation(handle uint32, name string) int32

	// EnableVertexAttribArray enables the vertex array for a slot.
	EnableVertexAttribArray(slot int32)

	// DisableVertexAttribArray disables the vertex array for a slot.
	DisableVertexAttribArray(slot int32)

	// UniformMatrix4 writes a 4x4 matrix to a uniform slot.
	UniformMatrix4(slot int32, m mgl32.Mat4)

	// UniformVec2 writes a two component vector to a uniform slot.
	UniformVec2(slot int32, v mgl32.Vec2)

	// UniformFloat writes a single float to a uniform slot.
	UniformFloat(slot int32, v float32)

	// UniformInt writes a single integer to a uniform slot. Used for
	// sampler slots, where the value is a texture unit.
	UniformInt(slot int32, v int32)

	// DeleteShader releases a compiled shader handle.
	DeleteShader(handle uint32)

	// DeleteProgram releases a linked program handle.
	DeleteProgram(handle uint32)
}
