package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-pong/parameter"
)

// RGB color definitions
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbNet         = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbPaddleLeft  = tcell.NewRGBColor(122, 162, 247) // Blue
	RgbPaddleRight = tcell.NewRGBColor(247, 118, 142) // Pink
	RgbScore       = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBar   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbPause       = tcell.NewRGBColor(224, 175, 104) // Amber
)

// Ball heat ramp endpoints, blended in Lab space
var (
	ballCool = colorful.Color{R: 0.49, G: 0.81, B: 1.0} // Sky blue at launch speed
	ballHot  = colorful.Color{R: 1.0, G: 0.33, B: 0.25} // Red-orange when fast
)

// ballHeatRange is the speed gain over launch speed that saturates the ramp
const ballHeatRange = 16.0

// BallColor tints the ball by speed: launch speed is cool, every paddle hit warms it
func BallColor(speed float64) tcell.Color {
	t := (speed - parameter.BallLaunchSpeed) / ballHeatRange
	t = min(max(t, 0), 1)

	r, g, b := ballCool.BlendLab(ballHot, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
