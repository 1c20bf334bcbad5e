// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gpu is a thin object layer over a GL-style rendering pipeline.

It wraps the four resources a draw needs: a [Buffer] of vertex or index
data, a [Texture] with its mip levels, a [Program] linked from [Shader]
stages, and a [Model] that ties the inputs and samplers of a program to
the buffers and textures holding their data. Every resource goes
through the same lifecycle: New returns an uncreated value, Create
allocates the native object, and Destroy frees it.

All native calls go through an [API] on a [Context]. The Context
tracks what is bound to each target and unit, so that the resources
can tell when a binding they rely on has been replaced. There is one
current context and it must only be used from the thread it is
current on.

A frame is then:

	pr.Render(model)

which enables the model inputs, makes the program current, enables the
model textures, draws with the program [Drawer], and disables everything
again.

Errors are typed: [ResourceCreationError], [CompileError], [LinkError],
[LinkPreconditionError], [UncommittedInputError], [MissingResourceError]
and [StaleBindingError]. Use errors.As to inspect them. Native error
codes are read separately with [Context.Errors].
*/
package gpu
