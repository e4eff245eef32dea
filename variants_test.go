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
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/glpaint/glpaint"
	"github.com/glpaint/glpaint/driver"
	"github.com/glpaint/glpaint/test"
)

func TestColorSlotResolution(t *testing.T) {
	drv := newFakeDriver()
	ctx := glpaint.NewContext(drv)

	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawColor)
	test.DemandSuccess(t, err)
	defer d.Release()

	test.ExpectEquality(t, d.Color.Position, int32(0))
	test.ExpectEquality(t, d.Color.Color, int32(1))
	test.ExpectEquality(t, d.Color.Projection, int32(10))
	test.ExpectEquality(t, d.Color.ModelView, int32(11))
	test.ExpectEquality(t, d.Color.Transform, int32(12))

	// color programs resolve no texture or gradient slots
	test.ExpectEquality(t, d.Texture == nil, true)
	test.ExpectEquality(t, d.Gradient == nil, true)
}

func TestTextureSupersetOfColor(t *testing.T) {
	colorDrv := newFakeDriver()
	colorCtx := glpaint.NewContext(colorDrv)
	_, err := glpaint.NewDrawProgram(colorCtx, glpaint.DrawColor)
	test.DemandSuccess(t, err)

	textureDrv := newFakeDriver()
	textureCtx := glpaint.NewContext(textureDrv)
	d, err := glpaint.NewDrawProgram(textureCtx, glpaint.DrawTexture)
	test.DemandSuccess(t, err)

	// every name the color program resolves is also resolved by the
	// texture program
	for name := range colorDrv.attribQueries {
		test.ExpectEquality(t, textureDrv.attribQueries[name], true, name)
	}
	for name := range colorDrv.uniformQueries {
		test.ExpectEquality(t, textureDrv.uniformQueries[name], true, name)
	}

	// and the texture program resolves strictly more
	test.ExpectEquality(t, len(textureDrv.attribQueries), len(colorDrv.attribQueries)+1)
	test.ExpectEquality(t, len(textureDrv.uniformQueries), len(colorDrv.uniformQueries)+1)

	// the new names do not collide with the inherited ones
	test.ExpectEquality(t, colorDrv.attribQueries["texCoords"], false)
	test.ExpectEquality(t, colorDrv.uniformQueries["sampler"], false)
	test.ExpectEquality(t, d.Texture.TexCoords, int32(2))
	test.ExpectEquality(t, d.Texture.Sampler, int32(13))
}

func TestTextSameSlotsAsTexture(t *testing.T) {
	drv := newFakeDriver()
	ctx := glpaint.NewContext(drv)

	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawText)
	test.DemandSuccess(t, err)

	// the text kind differs from the texture kind only in shader source
	test.ExpectEquality(t, d.Texture == nil, false)
	test.ExpectEquality(t, d.Gradient == nil, true)
	test.ExpectEquality(t, d.Texture.TexCoords, int32(2))
	test.ExpectEquality(t, d.Texture.Sampler, int32(13))
}

func TestActivationArrays(t *testing.T) {
	drv := newFakeDriver()
	ctx := glpaint.NewContext(drv)

	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawTexture)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, d.Use())

	// position, color and texCoords arrays are enabled
	test.ExpectEquality(t, drv.enabledArrays[d.Color.Position], true)
	test.ExpectEquality(t, drv.enabledArrays[d.Color.Color], true)
	test.ExpectEquality(t, drv.enabledArrays[d.Texture.TexCoords], true)

	d.Remove()

	test.ExpectEquality(t, drv.enabledArrays[d.Color.Position], false)
	test.ExpectEquality(t, drv.enabledArrays[d.Color.Color], false)
	test.ExpectEquality(t, drv.enabledArrays[d.Texture.TexCoords], false)
}

func TestGradientActivationNoExtraArrays(t *testing.T) {
	drv := newFakeDriver()
	ctx := glpaint.NewContext(drv)

	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawLinearGradient)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, d.Use())

	// only the two arrays of the color component are enabled. gradient
	// slots are all uniforms
	test.ExpectEquality(t, drv.counts["EnableVertexAttribArray"], 2)

	d.Remove()
	test.ExpectEquality(t, drv.counts["DisableVertexAttribArray"], 2)
}

func TestSetLinearGradient(t *testing.T) {
	drv := newFakeDriver()
	ctx := glpaint.NewContext(drv)

	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawLinearGradient)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, d.Use())

	screenSpace := mgl32.Ident4()
	start := mgl32.Vec2{5, 10}
	gradient := mgl32.Vec2{3, 4}
	d.SetLinearGradient(screenSpace, start, gradient, 1.0/5.0)

	test.DemandEquality(t, len(drv.matrixUploads[d.Gradient.ScreenSpace]), 1)
	test.ExpectEquality(t, drv.matrixUploads[d.Gradient.ScreenSpace][0], screenSpace)
	test.DemandEquality(t, len(drv.vec2Uploads[d.Gradient.Start]), 1)
	test.ExpectEquality(t, drv.vec2Uploads[d.Gradient.Start][0], start)
	test.DemandEquality(t, len(drv.vec2Uploads[d.Gradient.Gradient]), 1)
	test.ExpectEquality(t, drv.vec2Uploads[d.Gradient.Gradient][0], gradient)
	test.DemandEquality(t, len(drv.floatUploads[d.Gradient.GradientLength]), 1)
	test.ExpectEquality(t, drv.floatUploads[d.Gradient.GradientLength][0], float32(1.0/5.0))
}

func TestSetRequiresUse(t *testing.T) {
	drv := newFakeDriver()
	ctx := glpaint.NewContext(drv)

	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawColor)
	test.DemandSuccess(t, err)

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	d.Set(mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4())
}

func TestSetLinearGradientWrongKind(t *testing.T) {
	drv := newFakeDriver()
	ctx := glpaint.NewContext(drv)

	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawColor)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, d.Use())

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	d.SetLinearGradient(mgl32.Ident4(), mgl32.Vec2{}, mgl32.Vec2{}, 1)
}

// compile a color program, use it, upload the identity matrices, then
// remove it. the full activation protocol from the point of view of the
// driver
func TestEndToEnd(t *testing.T) {
	drv := newFakeDriver()
	ctx := glpaint.NewContext(drv)

	d, err := glpaint.NewDrawProgramSource(ctx, glpaint.DrawColor,
		testVertexSource, testFragmentSource)
	test.DemandSuccess(t, err)
	defer d.Release()

	test.ExpectEquality(t, d.InUse(), false)
	test.DemandSuccess(t, d.Use())

	ident := mgl32.Ident4()
	d.Set(ident, ident, ident)

	// the three uniform uploads carry the identity matrix to the three
	// matrix slots
	test.ExpectEquality(t, drv.counts["UniformMatrix4"], 3)
	for _, slot := range []int32{d.Color.Projection, d.Color.ModelView, d.Color.Transform} {
		test.DemandEquality(t, len(drv.matrixUploads[slot]), 1)
		test.ExpectEquality(t, drv.matrixUploads[slot][0], ident)
	}

	d.Remove()

	// position and color arrays were disabled and the program reads as
	// unused
	test.ExpectEquality(t, drv.enabledArrays[d.Color.Position], false)
	test.ExpectEquality(t, drv.enabledArrays[d.Color.Color], false)
	test.ExpectEquality(t, d.InUse(), false)

	// but the program was never unbound at the driver level
	test.ExpectEquality(t, drv.counts["BindProgram"], 1)
}

func TestKindString(t *testing.T) {
	test.ExpectEquality(t, glpaint.DrawColor.String(), "color")
	test.ExpectEquality(t, glpaint.DrawLinearGradient.String(), "linear gradient")
}

// the driver never has to handle a sentinel slot for attribute array
// enabling. names optimised out of the shader are skipped
func TestOptimisedOutAttrib(t *testing.T) {
	drv := newFakeDriver()
	delete(drv.attribSlots, "color")
	ctx := glpaint.NewContext(drv)

	d, err := glpaint.NewDrawProgram(ctx, glpaint.DrawColor)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Color.Color, driver.NoSlot)

	test.DemandSuccess(t, d.Use())
	test.ExpectEquality(t, drv.counts["EnableVertexAttribArray"], 1)
	test.ExpectEquality(t, drv.enabledArrays[driver.NoSlot], false)

	d.Remove()
	test.ExpectEquality(t, drv.counts["DisableVertexAttribArray"], 1)
}
