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

	"github.com/go-gl/mathgl/mgl32"
	"github.com/glpaint/glpaint/driver"
	"github.com/glpaint/glpaint/shaders"
)

// Kind enumerates the draw program flavours.
type Kind int

// List of valid Kind values.
const (
	DrawColor Kind = iota
	DrawTexture
	DrawText
	DrawLinearGradient
)

func (k Kind) String() string {
	switch k {
	case DrawColor:
		return "color"
	case DrawTexture:
		return "texture"
	case DrawText:
		return "text"
	case DrawLinearGradient:
		return "linear gradient"
	}
	return "unknown kind"
}

// sources returns the built-in GLSL pair for the kind. the text kind
// shares the texture vertex shader and differs only in its fragment shader
func (k Kind) sources() (string, string) {
	switch k {
	case DrawColor:
		return string(shaders.ColorVertexShader), string(shaders.ColorFragShader)
	case DrawTexture:
		return string(shaders.TextureVertexShader), string(shaders.TextureFragShader)
	case DrawText:
		return string(shaders.TextureVertexShader), string(shaders.TextFragShader)
	case DrawLinearGradient:
		return string(shaders.LinearGradientVertexShader), string(shaders.LinearGradientFragShader)
	}
	return "", ""
}

// ColorSlots are the slots every draw program resolves: the position and
// color vertex inputs and the three transformation matrices. Slot values
// are plain integers for zero-lookup access when issuing draw commands. A
// value of driver.NoSlot means the compiled shader does not use the name.
type ColorSlots struct {
	// attributes
	Position int32
	Color    int32

	// uniforms
	Projection int32
	ModelView  int32
	Transform  int32
}

func resolveColorSlots(prg *Program) ColorSlots {
	return ColorSlots{
		Position:   prg.Attrib("position"),
		Color:      prg.Attrib("color"),
		Projection: prg.Uniform("projection"),
		ModelView:  prg.Uniform("modelView"),
		Transform:  prg.Uniform("transform"),
	}
}

func (s ColorSlots) enable(drv driver.Driver) {
	enableArray(drv, s.Position)
	enableArray(drv, s.Color)
}

func (s ColorSlots) disable(drv driver.Driver) {
	disableArray(drv, s.Color)
	disableArray(drv, s.Position)
}

// TextureSlots are the additional slots resolved by the texture and text
// kinds: the texture coordinates vertex input and the sampler. Binding an
// actual texture unit value into the Sampler slot is the responsibility of
// the draw layer.
type TextureSlots struct {
	// attributes
	TexCoords int32

	// uniforms
	Sampler int32
}

func resolveTextureSlots(prg *Program) *TextureSlots {
	return &TextureSlots{
		TexCoords: prg.Attrib("texCoords"),
		Sampler:   prg.Uniform("sampler"),
	}
}

func (s *TextureSlots) enable(drv driver.Driver) {
	enableArray(drv, s.TexCoords)
}

func (s *TextureSlots) disable(drv driver.Driver) {
	disableArray(drv, s.TexCoords)
}

// GradientSlots are the additional slots resolved by the linear gradient
// kind. They are all uniforms so there is no attribute array bookkeeping
// beyond that of ColorSlots.
type GradientSlots struct {
	ScreenSpace    int32
	Start          int32
	Gradient       int32
	GradientLength int32
	Sampler        int32
}

func resolveGradientSlots(prg *Program) *GradientSlots {
	return &GradientSlots{
		ScreenSpace:    prg.Uniform("screenSpace"),
		Start:          prg.Uniform("start"),
		Gradient:       prg.Uniform("gradient"),
		GradientLength: prg.Uniform("gradientLength"),
		Sampler:        prg.Uniform("sampler"),
	}
}

// a name optimised away by the shader compiler has no array to enable
func enableArray(drv driver.Driver, slot int32) {
	if slot != driver.NoSlot {
		drv.EnableVertexAttribArray(slot)
	}
}

func disableArray(drv driver.Driver, slot int32) {
	if slot != driver.NoSlot {
		drv.DisableVertexAttribArray(slot)
	}
}

// DrawProgram couples a compiled Program with the fixed set of slots for
// its Kind. Slots are resolved once, at construction, and exposed as plain
// integer fields for the draw layer.
//
// Use() and Remove() extend the Program activation protocol with the
// enabling and disabling of exactly the vertex attribute arrays the kind
// owns.
type DrawProgram struct {
	kind Kind
	prg  *Program

	// slots resolved by every kind
	Color ColorSlots

	// non-nil for the DrawTexture and DrawText kinds
	Texture *TextureSlots

	// non-nil for the DrawLinearGradient kind
	Gradient *GradientSlots
}

// NewDrawProgram compiles the built-in shader pair for the kind and
// resolves the kind's slots.
func NewDrawProgram(ctx *Context, kind Kind) (*DrawProgram, error) {
	vertex, fragment := kind.sources()
	return NewDrawProgramSource(ctx, kind, vertex, fragment)
}

// NewDrawProgramSource is like NewDrawProgram but compiles the supplied
// shader pair instead of the built-in pair for the kind. The sources must
// declare the names the kind resolves, although names optimised away by
// the shader compiler are tolerated and resolve to driver.NoSlot.
func NewDrawProgramSource(ctx *Context, kind Kind, vertexSource string, fragmentSource string) (*DrawProgram, error) {
	prg, err := ctx.Compile(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}

	d := &DrawProgram{
		kind:  kind,
		prg:   prg,
		Color: resolveColorSlots(prg),
	}

	switch kind {
	case DrawTexture, DrawText:
		d.Texture = resolveTextureSlots(prg)
	case DrawLinearGradient:
		d.Gradient = resolveGradientSlots(prg)
	}

	return d, nil
}

// Kind of the draw program.
func (d *DrawProgram) Kind() Kind {
	return d.kind
}

// Program returns the underlying compiled program. Useful for resolving
// additional slots and for Retain()/Release() ownership management.
func (d *DrawProgram) Program() *Program {
	return d.prg
}

// InUse indicates whether this draw program currently holds the context.
func (d *DrawProgram) InUse() bool {
	return d.prg.InUse()
}

// Release drops an owner of the underlying program.
func (d *DrawProgram) Release() {
	d.prg.Release()
}

// Use binds the program to the context and enables the vertex attribute
// arrays owned by the kind. No-op if the program is already in use.
func (d *DrawProgram) Use() error {
	if d.prg.InUse() {
		return nil
	}

	err := d.prg.Use()
	if err != nil {
		return err
	}

	d.Color.enable(d.prg.ctx.drv)
	if d.Texture != nil {
		d.Texture.enable(d.prg.ctx.drv)
	}

	return nil
}

// Remove disables the vertex attribute arrays owned by the kind and marks
// the program as unused. Per the Program.Remove() contract, the program is
// not unbound at the driver level. No-op if the program is not in use.
func (d *DrawProgram) Remove() {
	if !d.prg.InUse() {
		return
	}

	if d.Texture != nil {
		d.Texture.disable(d.prg.ctx.drv)
	}
	d.Color.disable(d.prg.ctx.drv)

	d.prg.Remove()
}

// Set uploads the projection, modelView and transform matrices. It must be
// called after Use() and before the draw command that consumes them.
// Calling Set on a program that is not in use is a caller error and the
// function panics.
func (d *DrawProgram) Set(projection mgl32.Mat4, modelView mgl32.Mat4, transform mgl32.Mat4) {
	d.mustBeInUse("Set")

	drv := d.prg.ctx.drv
	drv.UniformMatrix4(d.Color.Projection, projection)
	drv.UniformMatrix4(d.Color.ModelView, modelView)
	drv.UniformMatrix4(d.Color.Transform, transform)
}

// SetLinearGradient uploads the gradient parameters: the matrix mapping
// vertex space to screen space, the gradient origin, the gradient
// direction vector and the reciprocal of that vector's magnitude. The
// reciprocal is precomputed by the caller so the fragment shader avoids a
// division.
//
// Panics if the program is not in use or is not of the DrawLinearGradient
// kind.
func (d *DrawProgram) SetLinearGradient(screenSpace mgl32.Mat4, start mgl32.Vec2, gradient mgl32.Vec2, gradientLength float32) {
	d.mustBeInUse("SetLinearGradient")
	if d.Gradient == nil {
		panic(fmt.Sprintf("glpaint: SetLinearGradient called on %s program", d.kind))
	}

	drv := d.prg.ctx.drv
	drv.UniformMatrix4(d.Gradient.ScreenSpace, screenSpace)
	drv.UniformVec2(d.Gradient.Start, start)
	drv.UniformVec2(d.Gradient.Gradient, gradient)
	drv.UniformFloat(d.Gradient.GradientLength, gradientLength)
}

func (d *DrawProgram) mustBeInUse(op string) {
	if !d.prg.InUse() {
		panic(fmt.Sprintf("glpaint: %s called on %s program that is not in use", op, d.kind))
	}
}
