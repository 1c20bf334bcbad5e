// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reload

import (
	"cogentcore.org/core/base/errors"

	"cogentcore.org/glpipe/gpu"
)

// Source is a shader stage compiled from a file.
type Source struct {
	Type gpu.ShaderTypes
	Path string
}

// Build compiles each source into an [gpu.Exclusive] shader and
// links them into a new program, calling prepare (if non-nil) on the
// program before linking. On failure, every shader created so far is
// destroyed and nothing is left allocated.
func Build(ctx *gpu.Context, name string, prepare func(pr *gpu.Program), sources ...Source) (*gpu.Program, error) {
	shaders := make([]*gpu.Shader, 0, len(sources))
	for _, src := range sources {
		sh := gpu.NewShader(ctx, src.Path, src.Type)
		if err := sh.OpenFile(src.Path); err != nil {
			for _, s := range shaders {
				s.Destroy()
			}
			return nil, err
		}
		shaders = append(shaders, sh)
	}
	pr := gpu.NewProgram(ctx, name)
	if prepare != nil {
		prepare(pr)
	}
	if err := pr.Create(shaders...); err != nil {
		return nil, err
	}
	return pr, nil
}

// Program is a [gpu.Program] rebuilt from its source files whenever
// they change. Rebuilds happen in Update, on the thread that calls it.
type Program struct {

	// Name is the name of each program built.
	Name string

	// Sources are the shader stages, in linking order.
	Sources []Source

	// Prepare is called on each new program before linking: it is
	// the place to prepare input locations and set the drawer.
	Prepare func(pr *gpu.Program)

	ctx     *gpu.Context
	current *gpu.Program
	watcher *Watcher
}

// NewProgram builds the program from sources and starts watching
// them. It returns the build error, if any, with no program.
func NewProgram(ctx *gpu.Context, name string, prepare func(pr *gpu.Program), sources ...Source) (*Program, error) {
	p := &Program{Name: name, Sources: sources, Prepare: prepare, ctx: ctx}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	paths := make([]string, len(sources))
	for i, src := range sources {
		paths[i] = src.Path
	}
	w, err := NewWatcher(paths...)
	if err != nil {
		p.current.Destroy()
		return nil, err
	}
	p.watcher = w
	return p, nil
}

// Current returns the program most recently built successfully.
func (p *Program) Current() *gpu.Program {
	return p.current
}

// Watcher returns the watcher of the source files.
func (p *Program) Watcher() *Watcher {
	return p.watcher
}

// Reload rebuilds the program now. On success the previous program
// is destroyed and replaced. On failure the previous program stays
// current and the compile or link error is returned.
func (p *Program) Reload() error {
	pr, err := Build(p.ctx, p.Name, p.Prepare, p.Sources...)
	if err != nil {
		return err
	}
	if p.current != nil {
		p.current.Destroy()
	}
	p.current = pr
	gpu.Logger().Info("reload: program built", "name", p.Name, "handle", pr.Handle())
	return nil
}

// Update rebuilds the program if any source changed since the last
// Update, returning whether a new program is current.
func (p *Program) Update() (bool, error) {
	changed := p.watcher.Pending()
	if len(changed) == 0 {
		return false, nil
	}
	gpu.Logger().Debug("reload: sources changed", "name", p.Name, "files", changed)
	if err := p.Reload(); err != nil {
		return false, err
	}
	return true, nil
}

// Close stops watching and destroys the current program.
func (p *Program) Close() error {
	err := p.watcher.Close()
	if p.current != nil {
		p.current.Destroy()
		p.current = nil
	}
	return errors.Log(err)
}
