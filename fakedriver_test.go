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

package glpaint_test

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/glpaint/glpaint/driver"
)

// fakeDriver is an instrumented driver.Driver implementation. Every
// operation increments a named counter so tests can verify exactly how
// many driver calls an operation issued.
type fakeDriver struct {
	counts map[string]int

	// names the fake resolves. any name not in these tables resolves to
	// driver.NoSlot
	attribSlots  map[string]int32
	uniformSlots map[string]int32

	// names actually queried by location lookups
	attribQueries  map[string]bool
	uniformQueries map[string]bool

	// when set, compilation of the stage fails with the given log
	failCompile map[driver.Stage]string

	// when not empty, linking fails with the given log
	failLink string

	nextShader  uint32
	nextProgram uint32

	bound           []uint32
	enabledArrays   map[int32]bool
	deletedShaders  []uint32
	deletedPrograms []uint32

	matrixUploads map[int32][]mgl32.Mat4
	vec2Uploads   map[int32][]mgl32.Vec2
	floatUploads  map[int32][]float32
	intUploads    map[int32][]int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		counts: make(map[string]int),
		attribSlots: map[string]int32{
			"position":  0,
			"color":     1,
			"texCoords": 2,
		},
		uniformSlots: map[string]int32{
			"projection":     10,
			"modelView":      11,
			"transform":      12,
			"sampler":        13,
			"screenSpace":    14,
			"start":          15,
			"gradient":       16,
			"gradientLength": 17,
		},
		attribQueries:  make(map[string]bool),
		uniformQueries: make(map[string]bool),
		failCompile:    make(map[driver.Stage]string),
		nextShader:     100,
		nextProgram:    200,
		enabledArrays:  make(map[int32]bool),
		matrixUploads:  make(map[int32][]mgl32.Mat4),
		vec2Uploads:    make(map[int32][]mgl32.Vec2),
		floatUploads:   make(map[int32][]float32),
		intUploads:     make(map[int32][]int32),
	}
}

func (drv *fakeDriver) CompileShader(stage driver.Stage, source string) (uint32, error) {
	drv.counts["CompileShader"]++
	if log, ok := drv.failCompile[stage]; ok {
		return 0, &driver.CompileError{Stage: stage, Log: log}
	}
	drv.nextShader++
	return drv.nextShader, nil
}

func (drv *fakeDriver) LinkProgram(vertex uint32, fragment uint32) (uint32, error) {
	drv.counts["LinkProgram"]++
	if drv.failLink != "" {
		return 0, &driver.LinkError{Log: drv.failLink}
	}
	drv.nextProgram++
	return drv.nextProgram, nil
}

func (drv *fakeDriver) BindProgram(handle uint32) {
	drv.counts["BindProgram"]++
	drv.bound = append(drv.bound, handle)
}

func (drv *fakeDriver) AttribLocation(handle uint32, name string) int32 {
	drv.counts["AttribLocation"]++
	drv.attribQueries[name] = true
	if slot, ok := drv.attribSlots[name]; ok {
		return slot
	}
	return driver.NoSlot
}

func (drv *fakeDriver) UniformLocation(handle uint32, name string) int32 {
	drv.counts["UniformLocation"]++
	drv.uniformQueries[name] = true
	if slot, ok := drv.uniformSlots[name]; ok {
		return slot
	}
	return driver.NoSlot
}

func (drv *fakeDriver) EnableVertexAttribArray(slot int32) {
	drv.counts["EnableVertexAttribArray"]++
	drv.enabledArrays[slot] = true
}

func (drv *fakeDriver) DisableVertexAttribArray(slot int32) {
	drv.counts["DisableVertexAttribArray"]++
	drv.enabledArrays[slot] = false
}

func (drv *fakeDriver) UniformMatrix4(slot int32, m mgl32.Mat4) {
	drv.counts["UniformMatrix4"]++
	drv.matrixUploads[slot] = append(drv.matrixUploads[slot], m)
}

func (drv *fakeDriver) UniformVec2(slot int32, v mgl32.Vec2) {
	drv.counts["UniformVec2"]++
	drv.vec2Uploads[slot] = append(drv.vec2Uploads[slot], v)
}

func (drv *fakeDriver) UniformFloat(slot int32, v float32) {
	drv.counts["UniformFloat"]++
	drv.floatUploads[slot] = append(drv.floatUploads[slot], v)
}

func (drv *fakeDriver) UniformInt(slot int32, v int32) {
	drv.counts["UniformInt"]++
	drv.intUploads[slot] = append(drv.intUploads[slot], v)
}

func (drv *fakeDriver) DeleteShader(handle uint32) {
	drv.counts["DeleteShader"]++
	drv.deletedShaders = append(drv.deletedShaders, handle)
}

func (drv *fakeDriver) DeleteProgram(handle uint32) {
	drv.counts["DeleteProgram"]++
	drv.deletedPrograms = append(drv.deletedPrograms, handle)
}
