// Package main is an interactive viewer for generated terrain: drag to
// orbit, scroll to zoom, WASD to pan, R to regenerate with a new seed.
package main

import (
	"fmt"
	gomath "math"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/alsid/clap/internal/config"
	"github.com/alsid/clap/internal/engine/camera"
	"github.com/alsid/clap/internal/engine/renderer"
	"github.com/alsid/clap/internal/engine/terrain"
	"github.com/alsid/clap/internal/engine/window"
	"github.com/alsid/clap/internal/logger"
	"github.com/alsid/clap/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "clap terrain viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	rend, err := renderer.New(renderer.Config{
		Width:     cfg.Graphics.Width,
		Height:    cfg.Graphics.Height,
		Wireframe: cfg.Graphics.Wireframe,
	})
	if err != nil {
		return err
	}
	defer rend.Close()

	cam := camera.NewOrbitCamera()

	params := terrain.Params{
		Origin: math.Vec3{
			X: cfg.Terrain.OriginX,
			Y: cfg.Terrain.OriginY,
			Z: cfg.Terrain.OriginZ,
		},
		Side:       cfg.Terrain.Side,
		Resolution: cfg.Terrain.Resolution,
		Seed:       cfg.Terrain.Seed,
	}

	if err := regenerate(rend, cam, params); err != nil {
		return err
	}

	dragging := false
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN {
					switch e.Keysym.Sym {
					case sdl.K_ESCAPE:
						running = false
					case sdl.K_r:
						params.Seed = time.Now().UnixNano()
						if err := regenerate(rend, cam, params); err != nil {
							return err
						}
					}
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if dragging {
					cam.HandleDrag(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				cam.HandleZoom(float32(e.Y))
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					rend.Resize(int(e.Data1), int(e.Data2))
				}
			}
		}

		keys := sdl.GetKeyboardState()
		var forward, right float32
		if keys[sdl.SCANCODE_W] != 0 {
			forward++
		}
		if keys[sdl.SCANCODE_S] != 0 {
			forward--
		}
		if keys[sdl.SCANCODE_D] != 0 {
			right++
		}
		if keys[sdl.SCANCODE_A] != 0 {
			right--
		}
		if forward != 0 || right != 0 {
			cam.HandleMovement(forward, right, 0)
		}

		rend.Begin()
		proj := math.Perspective(gomath.Pi/4, rend.Aspect(), 0.1, 10000)
		mvp := proj.Mul(cam.ViewMatrix())
		rend.DrawTerrain(mvp)
		win.SwapBuffers()
	}

	return nil
}

// regenerate builds a terrain, uploads its mesh, and refits the camera.
func regenerate(rend *renderer.Renderer, cam *camera.OrbitCamera, p terrain.Params) error {
	start := time.Now()
	tr, points, err := terrain.Generate(p)
	if err != nil {
		return err
	}
	logger.Info("terrain generated",
		zap.Int64("seed", tr.Seed()),
		zap.Int("placements", len(points)),
		zap.Duration("took", time.Since(start)),
	)

	rend.UploadMesh(tr.BuildMesh())
	cam.FitToTerrain(tr)
	return nil
}
