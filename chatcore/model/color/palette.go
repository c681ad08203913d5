/*
   Copyright 2026 The Craftwire Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package color

import "github.com/lucasb-eyer/go-colorful"

// paletteRGB holds the RGB value of each named palette color, indexed by
// the DefaultColor constant. Reset has no color of its own and is mapped to
// white, the renderer's default text color.
var paletteRGB = [...]HexColor{
	Black:       {r: 0x00, g: 0x00, b: 0x00},
	DarkBlue:    {r: 0x00, g: 0x00, b: 0xAA},
	DarkGreen:   {r: 0x00, g: 0xAA, b: 0x00},
	DarkAqua:    {r: 0x00, g: 0xAA, b: 0xAA},
	DarkRed:     {r: 0xAA, g: 0x00, b: 0x00},
	DarkPurple:  {r: 0xAA, g: 0x00, b: 0xAA},
	Gold:        {r: 0xFF, g: 0xAA, b: 0x00},
	Gray:        {r: 0xAA, g: 0xAA, b: 0xAA},
	DarkGray:    {r: 0x55, g: 0x55, b: 0x55},
	Blue:        {r: 0x55, g: 0x55, b: 0xFF},
	Green:       {r: 0x55, g: 0xFF, b: 0x55},
	Aqua:        {r: 0x55, g: 0xFF, b: 0xFF},
	Red:         {r: 0xFF, g: 0x55, b: 0x55},
	LightPurple: {r: 0xFF, g: 0x55, b: 0xFF},
	Yellow:      {r: 0xFF, g: 0xFF, b: 0x55},
	White:       {r: 0xFF, g: 0xFF, b: 0xFF},
	Reset:       {r: 0xFF, g: 0xFF, b: 0xFF},
}

// RGB returns the channel values of this palette color. Reset maps to
// white, the renderer's default text color. Out-of-range values map to
// black.
func (dc DefaultColor) RGB() HexColor {
	if dc < Black || dc > Reset {
		return HexColor{}
	}
	return paletteRGB[dc]
}

// Colorful converts this palette color into a colorful.Color for
// color-space computations.
func (dc DefaultColor) Colorful() colorful.Color {
	return dc.RGB().Colorful()
}

// Nearest returns the named palette color perceptually closest to an
// arbitrary RGB color, measured by CIE-Lab distance. Reset is never a
// candidate, since it carries no color of its own.
//
// Nearest is the bridge for renderers that only understand the sixteen
// legacy colors: a component styled with an arbitrary hex color can be
// downgraded to its closest palette entry.
//
// Example usage:
//
//	c, _ := color.ParseHexColor("#fe5454")
//	closest := color.Nearest(c) // color.Red
func Nearest(hc HexColor) DefaultColor {
	target := hc.Colorful()

	best := Black
	bestDist := target.DistanceLab(Black.Colorful())

	for dc := DarkBlue; dc <= White; dc++ {
		if d := target.DistanceLab(dc.Colorful()); d < bestDist {
			best = dc
			bestDist = d
		}
	}

	return best
}
