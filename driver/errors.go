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

package driver

import (
	"fmt"
	"strings"
)

// CompileError is returned by Driver.CompileShader when source text for one
// of the stages fails to compile. The error is terminal for the program
// being built. There is no retry policy because recompiling unmodified
// source deterministically fails again.
type CompileError struct {
	Stage Stage

	// Log is the diagnostic text supplied by the driver. It may be empty.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError is returned by Driver.LinkProgram when two successfully
// compiled stages cannot be linked. For example, when the interfaces of the
// two stages do not agree. As with CompileError, the failure is terminal.
type LinkError struct {
	// Log is the diagnostic text supplied by the driver. It may be empty.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program linking failed: %s", strings.TrimSpace(e.Log))
}
