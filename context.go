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
	"errors"

	"github.com/glpaint/glpaint/assert"
	"github.com/glpaint/glpaint/driver"
	"github.com/glpaint/glpaint/logger"
)

// ErrContextHeld is returned by Use() when a different program already
// holds the context. The holding program must be removed before another
// program can be used.
var ErrContextHeld = errors.New("context held by another program")

// Context owns the single-active-program capability of a graphics context.
// A program borrows the capability with Use() and returns it with
// Remove(). Exactly one program can hold the capability at any time.
//
// A Context must only be driven by one goroutine. There is no internal
// locking. The StrictGoroutines() option turns the discipline into a
// runtime check.
type Context struct {
	drv driver.Driver

	// the program currently holding the binding capability. nil when no
	// program is in use
	active *Program

	// goroutine that created the context
	goroutineID uint64
	strict      bool
}

// NewContext is the preferred method of initialisation for the Context
// type. The driver must be ready for use: for the gl32 driver that means
// the GL context has been made current on the calling goroutine.
func NewContext(drv driver.Driver) *Context {
	logger.Logf(logger.Allow, "glpaint", "new context with %T driver", drv)
	return &Context{
		drv:         drv,
		goroutineID: assert.GetGoRoutineID(),
	}
}

// StrictGoroutines turns the single-goroutine discipline into a runtime
// check. When enabled, driver operations made from a goroutine other than
// the one that created the context will panic rather than corrupt context
// state silently.
func (ctx *Context) StrictGoroutines(enable bool) {
	ctx.strict = enable
}

func (ctx *Context) check() {
	if ctx.strict && assert.GetGoRoutineID() != ctx.goroutineID {
		panic("glpaint: context driven from more than one goroutine")
	}
}

// Active returns the program currently holding the context, or nil if no
// program is in use.
func (ctx *Context) Active() *Program {
	return ctx.active
}
