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

// Package glpaint manages compiled GPU shader programs and exposes their
// named input slots to a rendering pipeline.
//
// A Context wraps a driver.Driver implementation and owns the
// single-active-program capability of the underlying graphics context.
// Programs are compiled with Context.Compile() or, more usually, through
// one of the fixed-slot draw program kinds:
//
//	ctx := glpaint.NewContext(drv)
//	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawLinearGradient)
//	if err != nil {
//		// compile or link failure. terminal for this program
//	}
//	defer d.Release()
//
//	err = d.Use()
//	d.Set(projection, modelView, transform)
//	d.SetLinearGradient(screenSpace, start, gradient, 1.0/length)
//	// ... issue draw commands using the slots in d.Color and d.Gradient ...
//	d.Remove()
//
// A DrawProgram resolves its slots once, immediately after link success.
// Per-frame rendering therefore never queries the driver by name. Slots
// for names that the shader compiler optimised away resolve to
// driver.NoSlot, which is not an error.
//
// Use() enables the vertex attribute arrays the kind owns. Remove()
// disables them but deliberately leaves the program bound at the driver
// level. Only one program can hold a context at a time: Use() returns
// ErrContextHeld if another program has not been removed.
//
// The package performs no locking. A context and all programs compiled on
// it must be driven from a single goroutine.
package glpaint
