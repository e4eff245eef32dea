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

// Attrib returns the slot for the named per-vertex input. The first lookup
// of a name queries the driver; the result, including driver.NoSlot, is
// cached and returned for every subsequent lookup of that name.
//
// driver.NoSlot is not an error. The shader compiler may legitimately have
// optimised the name away.
func (prg *Program) Attrib(name string) int32 {
	if slot, ok := prg.attribs[name]; ok {
		return slot
	}
	slot := prg.ctx.drv.AttribLocation(prg.handle, name)
	prg.attribs[name] = slot
	return slot
}

// Uniform returns the slot for the named per-draw input. Caching works as
// for Attrib().
func (prg *Program) Uniform(name string) int32 {
	if slot, ok := prg.uniforms[name]; ok {
		return slot
	}
	slot := prg.ctx.drv.UniformLocation(prg.handle, name)
	prg.uniforms[name] = slot
	return slot
}

// AddAttrib resolves the named attribute, discarding the result. Useful
// during construction-time slot capture so required slots read as a flat
// list of names.
func (prg *Program) AddAttrib(name string) {
	_ = prg.Attrib(name)
}

// AddUniform resolves the named uniform, discarding the result.
func (prg *Program) AddUniform(name string) {
	_ = prg.Uniform(name)
}
