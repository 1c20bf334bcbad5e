// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Command glpipe draws a textured quad through the gpu pipeline,
// optionally from shader files that are rebuilt when they change.
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/cli"

	"cogentcore.org/glpipe/gpu"
	"cogentcore.org/glpipe/gpu/glcore"
)

//go:generate core generate -add-types -add-funcs

func init() {
	// must lock main thread for glfw
	runtime.LockOSThread()
}

func main() { //types:skip
	opts := cli.DefaultOptions("glpipe", "Draws a textured quad through the gpu pipeline.")
	cli.Run(opts, &Config{}, Run, Check)
}

var background = color.RGBA{0x20, 0x20, 0x20, 0xff}

// Run opens a window and draws the textured quad until it closes.
func Run(c *Config) error { //cli:cmd -root
	setup(c)
	win, err := glcore.CreateWindow(glcore.WindowOptions{Size: c.Size(), Title: "glpipe", VSync: true})
	if err != nil {
		return err
	}
	defer win.Destroy()
	sc, err := newScene(win.Context, c)
	if err != nil {
		return err
	}
	defer sc.destroy()

	for frame := 0; c.Frames == 0 || frame < c.Frames; frame++ {
		if !win.PollEvents() {
			break
		}
		win.Clear(background)
		if err := sc.draw(); err != nil {
			return err
		}
		win.Context.CheckError("glpipe: frame")
		win.SwapBuffers()
	}
	return nil
}

// Check builds the scene in a hidden window, draws one frame
// and reports any GL errors, saving the frame to Output if set.
func Check(c *Config) error {
	setup(c)
	win, err := glcore.CreateWindow(glcore.WindowOptions{Size: c.Size(), Title: "glpipe", Hidden: true})
	if err != nil {
		return err
	}
	defer win.Destroy()
	sc, err := newScene(win.Context, c)
	if err != nil {
		return err
	}
	defer sc.destroy()

	win.Clear(background)
	if err := sc.draw(); err != nil {
		return err
	}
	if errs := win.Context.Errors(); len(errs) > 0 {
		return fmt.Errorf("glpipe: frame reported GL errors: %v", errs)
	}
	if c.Output != "" {
		if err := imagex.Save(win.Capture(), c.Output); err != nil {
			return err
		}
	}
	fmt.Println("glpipe: ok,", sc.current().Name, "linked and drawn")
	return nil
}

// setup configures logging for c.
func setup(c *Config) {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
		gpu.Debug = true
	}
	gpu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
