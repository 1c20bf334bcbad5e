// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Drawer issues the draw call for [Program.Render], after the model
// is enabled and the program is current. Replacing the Drawer of a
// program changes the draw without changing the enable and disable
// steps around it.
type Drawer interface {
	Draw(ctx *Context, m *Model) error
}

// ArraysDrawer draws [Model.Count] vertices in order from vertex 0.
type ArraysDrawer struct {
	Topology Topologies
}

func (d *ArraysDrawer) Draw(ctx *Context, m *Model) error {
	ctx.api.DrawArrays(d.Topology, 0, m.Count())
	return nil
}

// IndexedDrawer draws [Model.Count] indexes from the model element
// buffer, which is bound for the draw. It returns a
// [MissingResourceError] if the model has no element buffer.
type IndexedDrawer struct {
	Topology Topologies
}

func (d *IndexedDrawer) Draw(ctx *Context, m *Model) error {
	if err := m.EnableElementBuffer(); err != nil {
		return err
	}
	ctx.api.DrawElements(d.Topology, m.Count(), m.ElementType(), 0)
	return m.DisableElementBuffer()
}

// InstancedDrawer draws Instances copies of [Model.Count] vertices.
type InstancedDrawer struct {
	Topology  Topologies
	Instances int
}

func (d *InstancedDrawer) Draw(ctx *Context, m *Model) error {
	ctx.api.DrawArraysInstanced(d.Topology, 0, m.Count(), d.Instances)
	return nil
}
