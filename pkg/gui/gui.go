package gui

import (
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hmaeno/gnes/pkg/input"
	"github.com/hmaeno/gnes/pkg/logger"
	"github.com/hmaeno/gnes/pkg/nes"
	"github.com/hmaeno/gnes/pkg/ppu"
)

const (
	WindowTitle = "gnes"

	// NTSC NES frame rate: 1789773 / 29780.5 = 60.0988 FPS
	frameTime = time.Duration(16639267) * time.Nanosecond
)

// GUI presents frames through SDL2 and feeds keyboard state into the
// controller
type GUI struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	nes      *nes.NES
	running  bool

	screenshotNum int
}

// New creates the SDL window, renderer and streaming texture
func New(nesSystem *nes.NES, scale int) (*GUI, error) {
	// SDL requires the main thread
	runtime.LockOSThread()

	if scale < 1 {
		scale = 3
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	window, err := sdl.CreateWindow(
		WindowTitle,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(ppu.ScreenWidth*scale),
		int32(ppu.ScreenHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_NONE)

	// ABGR8888 matches the R,G,B,A byte order of the frame buffer on
	// little-endian hosts
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth,
		ppu.ScreenHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_NONE)

	return &GUI{
		window:   window,
		renderer: renderer,
		texture:  texture,
		nes:      nesSystem,
		running:  true,
	}, nil
}

// Destroy cleans up SDL resources
func (g *GUI) Destroy() {
	if g.texture != nil {
		g.texture.Destroy()
	}
	if g.renderer != nil {
		g.renderer.Destroy()
	}
	if g.window != nil {
		g.window.Destroy()
	}
	sdl.Quit()
}

// Run pumps input, emulates one frame per iteration and presents it,
// paced at the NTSC frame rate on top of the renderer's VSync.
func (g *GUI) Run() {
	frameCount := 0
	startTime := time.Now()

	for g.running {
		g.handleEvents()
		g.nes.StepFrame()
		g.render()

		// Pace against total elapsed time so Sleep jitter does not
		// accumulate
		frameCount++
		targetEndTime := startTime.Add(time.Duration(frameCount) * frameTime)
		now := time.Now()
		if now.Before(targetEndTime) {
			time.Sleep(targetEndTime.Sub(now))
		}
	}
}

// handleEvents processes SDL events
func (g *GUI) handleEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			g.running = false
		case *sdl.KeyboardEvent:
			g.handleKeyboard(e)
		}
	}
}

// handleKeyboard maps keyboard input to the NES controller
func (g *GUI) handleKeyboard(event *sdl.KeyboardEvent) {
	pressed := event.State == sdl.PRESSED
	pad := g.nes.Input

	switch event.Keysym.Sym {
	case sdl.K_z:
		pad.SetButton(input.ButtonMaskA, pressed)
	case sdl.K_x:
		pad.SetButton(input.ButtonMaskB, pressed)
	case sdl.K_a:
		pad.SetButton(input.ButtonMaskSelect, pressed)
	case sdl.K_s:
		pad.SetButton(input.ButtonMaskStart, pressed)
	case sdl.K_UP:
		pad.SetButton(input.ButtonMaskUp, pressed)
	case sdl.K_DOWN:
		pad.SetButton(input.ButtonMaskDown, pressed)
	case sdl.K_LEFT:
		pad.SetButton(input.ButtonMaskLeft, pressed)
	case sdl.K_RIGHT:
		pad.SetButton(input.ButtonMaskRight, pressed)
	case sdl.K_ESCAPE:
		g.running = false
	case sdl.K_F12:
		if pressed {
			g.saveScreenshot()
		}
	}
}

// render uploads the completed frame and presents it
func (g *GUI) render() {
	framebuffer := g.nes.FramebufferRGBA()

	g.texture.Update(nil, unsafe.Pointer(&framebuffer[0]), ppu.ScreenWidth*4)
	g.renderer.Clear()
	g.renderer.Copy(g.texture, nil, nil)
	g.renderer.Present()
}

// saveScreenshot writes the current frame to a BMP file
func (g *GUI) saveScreenshot() {
	framebuffer := g.nes.FramebufferRGBA()

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&framebuffer[0]),
		ppu.ScreenWidth,
		ppu.ScreenHeight,
		32,
		ppu.ScreenWidth*4,
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		logger.LogError("Failed to create screenshot surface: %v", err)
		return
	}
	defer surface.Free()

	filename := fmt.Sprintf("screenshot_%03d.bmp", g.screenshotNum)
	if err := surface.SaveBMP(filename); err != nil {
		logger.LogError("Failed to save screenshot: %v", err)
		return
	}

	g.screenshotNum++
	logger.LogInfo("Saved %s", filename)
}
