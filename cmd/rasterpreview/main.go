// Command rasterpreview is a small interactive viewer for the raster2d
// engine: it rasterizes a demo scene (a filled star and a stroked ribbon)
// into an RGBA bitmap, scales it once at startup to the initial window
// size with golang.org/x/image/draw, and blits it to an SDL2 window
// every frame (the renderer stretches it if the window is resized).
//
// Grounded on the flga-vnes cmd/vnes viewer's SDL2 window/renderer/
// streaming-texture setup (internal/gui/view.go, internal/gui/
// renderer.go): one window, one renderer, one ABGR8888 streaming
// texture updated every frame from a plain []byte buffer.
package main

import (
	"fmt"
	"image"
	"log"
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"

	"github.com/vexraster/raster2d"
)

const (
	sceneWidth  = 400
	sceneHeight = 300
	windowScale = 2
)

func buildScene() *raster2d.Bitmap {
	bmp := raster2d.NewBitmap(sceneWidth, sceneHeight, raster2d.RGBA, false)

	star := starPath(100, 150, 70, 30, 5)
	fill, err := raster2d.Rasterize(star, raster2d.Options{
		Width: sceneWidth, Height: sceneHeight, ScaleX: 1, ScaleY: 1,
		Mode: raster2d.RGBA, Rule: raster2d.NonZero,
		Foreground: raster2d.Color{R: 235, G: 180, B: 40},
	})
	if err != nil {
		log.Fatalf("rasterpreview: rasterize star: %v", err)
	}
	compositeOver(bmp, fill)

	ribbon := raster2d.NewPath().MoveTo(180, 60).CubicTo(260, 10, 340, 110, 380, 60)
	outline := raster2d.Stroke(ribbon, raster2d.StrokeOptions{
		Width: 14, Cap: raster2d.CapRound, Join: raster2d.JoinRound,
	})
	stroke, err := raster2d.Rasterize(outline, raster2d.Options{
		Width: sceneWidth, Height: sceneHeight, ScaleX: 1, ScaleY: 1,
		Mode: raster2d.RGBA, Rule: raster2d.NonZero,
		Foreground: raster2d.Color{R: 60, G: 140, B: 235},
	})
	if err != nil {
		log.Fatalf("rasterpreview: rasterize ribbon: %v", err)
	}
	compositeOver(bmp, stroke)

	return bmp
}

// starPath builds a five-pointed star outline, a path shape the teacher's
// own demos favor for exercising straight-edged concave geometry.
func starPath(cx, cy, outerR, innerR float64, points int) *raster2d.Path {
	p := raster2d.NewPath()
	for i := 0; i < points*2; i++ {
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		angle := math.Pi/2 + float64(i)*math.Pi/float64(points)
		x := cx + r*math.Cos(angle)
		y := cy - r*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.ClosePath()
	return p
}

// compositeOver straight-alpha blends src onto dst in place.
func compositeOver(dst, src *raster2d.Bitmap) {
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			sr, sg, sb, sa := src.AtRGBA(x, y)
			if sa == 0 {
				continue
			}
			dr, dg, db, da := dst.AtRGBA(x, y)
			a := int(sa)
			inv := 255 - a
			dst.SetRGBA(x, y,
				byte((int(sr)*a+int(dr)*inv)/255),
				byte((int(sg)*a+int(dg)*inv)/255),
				byte((int(sb)*a+int(db)*inv)/255),
				byte(min(255, int(sa)+int(da)*inv/255)),
			)
		}
	}
}

func main() {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("rasterpreview: sdl init: %v", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("raster2d preview",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		sceneWidth*windowScale, sceneHeight*windowScale, sdl.WINDOW_RESIZABLE)
	if err != nil {
		log.Fatalf("rasterpreview: create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Fatalf("rasterpreview: create renderer: %v", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, sceneWidth*windowScale, sceneHeight*windowScale)
	if err != nil {
		log.Fatalf("rasterpreview: create texture: %v", err)
	}
	defer texture.Destroy()

	scene := buildScene()
	scaled := scaleScene(scene, sceneWidth*windowScale, sceneHeight*windowScale)

	fmt.Println("raster2d preview: ESC or close window to exit")
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}

		if err := texture.Update(nil, scaled.Pix, scaled.Stride); err != nil {
			log.Fatalf("rasterpreview: update texture: %v", err)
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
		sdl.Delay(16)
	}
}

// scaleScene uses golang.org/x/image/draw to resample the rasterized
// scene up to the window's pixel size, rather than re-rasterizing the
// path at a different scale.
func scaleScene(bmp *raster2d.Bitmap, outWidth, outHeight int) *image.RGBA {
	src := &image.RGBA{
		Pix:    bmp.Pix,
		Stride: bmp.Width * 4,
		Rect:   image.Rect(0, 0, bmp.Width, bmp.Height),
	}
	dst := image.NewRGBA(image.Rect(0, 0, outWidth, outHeight))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
