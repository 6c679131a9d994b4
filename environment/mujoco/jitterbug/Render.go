package jitterbug

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Rendering constants
const (
	RenderSize  = 400   // width and height of rendered frames in pixels
	RenderScale = 400.0 // pixels per metre

	robotRadius   = 0.03 // metres
	targetRadius  = 0.02
	pointerLength = 0.06
)

// Render draws a top-down view of the Jitterbug and its target, centred
// on the origin. The Jitterbug is drawn with a line towards its face.
// The target heading is drawn if showPointer is true.
func Render(p Physics, showPointer bool) (image.Image, error) {
	k := NewKinematics(p)

	robot, err := k.RobotPose()
	if err != nil {
		return nil, fmt.Errorf("render: %v", err)
	}
	robotYaw, err := k.RobotYaw()
	if err != nil {
		return nil, fmt.Errorf("render: %v", err)
	}
	target, err := k.TargetPose()
	if err != nil {
		return nil, fmt.Errorf("render: %v", err)
	}
	targetYaw, err := k.TargetYaw()
	if err != nil {
		return nil, fmt.Errorf("render: %v", err)
	}
	upright, err := k.Uprightness()
	if err != nil {
		return nil, fmt.Errorf("render: %v", err)
	}

	dc := gg.NewContext(RenderSize, RenderSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Axes through the origin
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	dc.DrawLine(0, RenderSize/2, RenderSize, RenderSize/2)
	dc.DrawLine(RenderSize/2, 0, RenderSize/2, RenderSize)
	dc.Stroke()

	// Target
	tx, ty := worldToPixel(target.Position.AtVec(0), target.Position.AtVec(1))
	dc.SetRGB(0.2, 0.7, 0.2)
	dc.DrawCircle(tx, ty, targetRadius*RenderScale)
	dc.Fill()
	if showPointer {
		dc.SetLineWidth(3)
		drawHeading(dc, target.Position.AtVec(0), target.Position.AtVec(1),
			targetYaw, pointerLength)
		dc.Stroke()
	}

	// Jitterbug, fading as it tips over
	rx, ry := worldToPixel(robot.Position.AtVec(0), robot.Position.AtVec(1))
	dc.SetRGBA(0.8, 0.3, 0.1, 0.25+0.75*upright)
	dc.DrawCircle(rx, ry, robotRadius*RenderScale)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	drawHeading(dc, robot.Position.AtVec(0), robot.Position.AtVec(1),
		robotYaw, 2*robotRadius)
	dc.Stroke()

	return dc.Image(), nil
}

// Render saves a top-down view of the environment to a PNG file
func (j *Jitterbug) Render(filename string) error {
	img, err := Render(j.Simulator, j.task.ShowsPointer())
	if err != nil {
		return err
	}
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("render: could not save %v: %v", filename, err)
	}
	return nil
}

// drawHeading adds a line of the given length from (x, y) in the
// direction yaw to the current path
func drawHeading(dc *gg.Context, x, y, yaw, length float64) {
	x1, y1 := worldToPixel(x, y)
	x2, y2 := worldToPixel(x+length*math.Cos(yaw), y+length*math.Sin(yaw))
	dc.DrawLine(x1, y1, x2, y2)
}

// worldToPixel converts world XY coordinates to pixel coordinates. The
// world Y axis points up in the image.
func worldToPixel(x, y float64) (float64, float64) {
	return RenderSize/2 + x*RenderScale, RenderSize/2 - y*RenderScale
}
