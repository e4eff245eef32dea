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

// Package shaders contains the built-in GLSL source for the draw program
// kinds. All sources target GLSL 1.50 (OpenGL 3.2 core).
package shaders

import _ "embed"

//go:embed "color.vert"
var ColorVertexShader []byte

//go:embed "color.frag"
var ColorFragShader []byte

//go:embed "texture.vert"
var TextureVertexShader []byte

//go:embed "texture.frag"
var TextureFragShader []byte

//go:embed "text.frag"
var TextFragShader []byte

//go:embed "lineargradient.vert"
var LinearGradientVertexShader []byte

//go:embed "lineargradient.frag"
var LinearGradientFragShader []byte
