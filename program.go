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

package glpaint

import (
	"fmt"
	"sync/atomic"

	"github.com/glpaint/glpaint/driver"
	"github.com/glpaint/glpaint/logger"
)

// Program is a linked GPU program built from a vertex and a fragment
// shader. It caches the slots of named attributes and uniforms so that
// per-frame rendering never queries the driver by name.
//
// Ownership of a Program is shared. Every owner beyond the first must be
// registered with Retain() and every owner must call Release() when done.
// The GPU handles are freed exactly once, on the last release.
type Program struct {
	ctx *Context

	// handles are valid if and only if compilation and linking succeeded.
	// Compile() never returns a program with invalid handles
	handle   uint32
	vertex   uint32
	fragment uint32

	inUse bool
	refs  atomic.Int32

	// resolved slots, keyed by name. append-only after construction
	attribs  map[string]int32
	uniforms map[string]int32
}

// Compile builds a Program from vertex and fragment source text. Each
// stage is compiled independently and the two stages are then linked.
// Failure at any step is terminal: the diagnostic log is recorded with the
// central logger, nothing is left allocated on the context, and the
// returned error unwraps to *driver.CompileError or *driver.LinkError.
//
// The returned Program has a reference count of one. isInUse() is false.
func (ctx *Context) Compile(vertexSource string, fragmentSource string) (*Program, error) {
	ctx.check()

	vertex, err := ctx.drv.CompileShader(driver.StageVertex, vertexSource)
	if err != nil {
		logger.Log(logger.Allow, "glpaint", err)
		return nil, fmt.Errorf("glpaint: %w", err)
	}

	fragment, err := ctx.drv.CompileShader(driver.StageFragment, fragmentSource)
	if err != nil {
		ctx.drv.DeleteShader(vertex)
		logger.Log(logger.Allow, "glpaint", err)
		return nil, fmt.Errorf("glpaint: %w", err)
	}

	handle, err := ctx.drv.LinkProgram(vertex, fragment)
	if err != nil {
		ctx.drv.DeleteShader(vertex)
		ctx.drv.DeleteShader(fragment)
		logger.Log(logger.Allow, "glpaint", err)
		return nil, fmt.Errorf("glpaint: %w", err)
	}

	prg := &Program{
		ctx:      ctx,
		handle:   handle,
		vertex:   vertex,
		fragment: fragment,
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
	}
	prg.refs.Store(1)

	return prg, nil
}

// Use binds the program as the active program on the context, borrowing
// the context's binding capability. Calling Use() on a program that is
// already in use is a no-op.
//
// Returns ErrContextHeld if a different program currently holds the
// context. The holding program must be removed first.
func (prg *Program) Use() error {
	prg.ctx.check()

	if prg.inUse {
		return nil
	}
	if prg.ctx.active != nil {
		return fmt.Errorf("glpaint: use: %w", ErrContextHeld)
	}

	prg.ctx.drv.BindProgram(prg.handle)
	prg.ctx.active = prg
	prg.inUse = true

	return nil
}

// Remove marks the program as unused and returns the binding capability to
// the context. It does not unbind the program at the driver level: the
// context retains whatever program was last bound and unbinding would cost
// a driver call for no GPU-state value. The caller is responsible for
// using a different program before the next draw.
//
// Calling Remove() on a program that is not in use is a no-op.
func (prg *Program) Remove() {
	if !prg.inUse {
		return
	}
	prg.inUse = false
	if prg.ctx.active == prg {
		prg.ctx.active = nil
	}
}

// InUse indicates whether this program currently holds the context. It is
// a pure query of local state and does not touch the driver.
func (prg *Program) InUse() bool {
	return prg.inUse
}

// Retain registers an additional owner of the program. Returns the program
// for convenience.
func (prg *Program) Retain() *Program {
	prg.refs.Add(1)
	return prg
}

// Release drops an owner of the program. The release that drops the last
// owner deletes the GPU handles, exactly once. Releasing more times than
// the program has been retained is a programming error and panics.
func (prg *Program) Release() {
	n := prg.refs.Add(-1)
	if n < 0 {
		panic("glpaint: release of already released program")
	}
	if n == 0 {
		prg.ctx.drv.DeleteShader(prg.vertex)
		prg.ctx.drv.DeleteShader(prg.fragment)
		prg.ctx.drv.DeleteProgram(prg.handle)
	}
}
