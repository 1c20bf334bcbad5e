// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderCompileError(t *testing.T) {
	rec, ctx := newContext(t)
	fs := gpu.NewShader(ctx, "broken", gpu.FragmentShader)
	err := fs.Create("#version 410\n#error broken\n")

	var ce *gpu.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "broken", ce.Shader)
	assert.Equal(t, gpu.FragmentShader, ce.Type)
	assert.Equal(t, rec.CompileLog, ce.Log)
	assert.False(t, fs.IsCreated())
	assert.Equal(t, 0, rec.Live("shader"))

	// the failed stage cannot be linked
	vs := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	require.NoError(t, vs.Create(vertexSrc))
	pr := gpu.NewProgram(ctx, "test")
	var lpe *gpu.LinkPreconditionError
	require.True(t, errors.As(pr.Create(vs, fs), &lpe))
	assert.Equal(t, "broken", lpe.Shader)
	assert.Empty(t, rec.Called("LinkProgram"))
}

func TestShaderCreateFails(t *testing.T) {
	rec, ctx := newContext(t)
	rec.FailAlloc["shader"] = true
	sh := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	var rce *gpu.ResourceCreationError
	require.True(t, errors.As(sh.Create(vertexSrc), &rce))
	assert.Equal(t, "shader", rce.Kind)
	assert.Equal(t, "vertex", rce.Name)
	assert.Empty(t, rec.Called("ShaderSource"))
}

func TestShaderFiles(t *testing.T) {
	rec, ctx := newContext(t)
	fsys := fstest.MapFS{"shaders/tri.vert": {Data: []byte(vertexSrc)}}
	sh := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	require.NoError(t, sh.CreateFile(fsys, "shaders/tri.vert"))
	assert.True(t, sh.IsCreated())
	assert.Error(t, gpu.NewShader(ctx, "missing", gpu.VertexShader).CreateFile(fsys, "shaders/none.vert"))

	fn := filepath.Join(t.TempDir(), "tri.frag")
	require.NoError(t, os.WriteFile(fn, []byte(fragmentSrc), 0666))
	fsh := gpu.NewShader(ctx, "fragment", gpu.FragmentShader)
	require.NoError(t, fsh.OpenFile(fn))
	assert.True(t, fsh.IsCreated())
	assert.Equal(t, 2, rec.Live("shader"))
}

func TestProgramPrecondition(t *testing.T) {
	rec, ctx := newContext(t)
	vs := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	require.NoError(t, vs.Create(vertexSrc))
	fs := gpu.NewShader(ctx, "fragment", gpu.FragmentShader)

	pr := gpu.NewProgram(ctx, "test")
	err := pr.Create(vs, fs)
	var lpe *gpu.LinkPreconditionError
	require.True(t, errors.As(err, &lpe))
	assert.Equal(t, "fragment", lpe.Shader)
	assert.Equal(t, gpu.FragmentShader, lpe.Type)

	// nothing allocated, nothing consumed
	assert.Equal(t, 0, rec.Allocated("program"))
	assert.True(t, vs.IsCreated())
	assert.False(t, pr.IsCreated())
}

func TestProgramCreate(t *testing.T) {
	rec, ctx := newContext(t)
	vs := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	require.NoError(t, vs.Create(vertexSrc))
	fs := gpu.NewShader(ctx, "fragment", gpu.FragmentShader)
	require.NoError(t, fs.Create(fragmentSrc))
	vh, fh := vs.Handle(), fs.Handle()

	pr := gpu.NewProgram(ctx, "test")
	pr.PrepareInputLocation("pos", 3)
	pr.PrepareInputLocation("uv", 1)
	rec.Reset()
	require.NoError(t, pr.Create(vs, fs))
	ph := pr.Handle()

	assert.Equal(t, []string{
		"CreateProgram()",
		fmtCall("AttachShader", ph, vh),
		fmtCall("AttachShader", ph, fh),
		fmtCall("BindAttribLocation", ph, 3, `"pos"`),
		fmtCall("BindAttribLocation", ph, 1, `"uv"`),
		fmtCall("LinkProgram", ph),
		fmtCall("DetachShader", ph, vh),
		fmtCall("DetachShader", ph, fh),
		fmtCall("DeleteShader", vh),
		fmtCall("DeleteShader", fh),
	}, rec.Calls)

	assert.Empty(t, rec.Attached(ph))
	assert.False(t, vs.IsCreated())
	assert.False(t, fs.IsCreated())
	assert.Equal(t, gpu.Location(3), pr.InputLocation("pos"))
	assert.Equal(t, gpu.NoLocation, pr.InputLocation("normal"))

	rec.Uniforms["tex"] = 2
	assert.Equal(t, gpu.Location(2), pr.UniformLocation("tex"))
	assert.Equal(t, gpu.NoLocation, pr.UniformLocation("color"))

	pr.Destroy()
	assert.False(t, pr.IsCreated())
	assert.Equal(t, 0, rec.Live("program"))
}

func TestProgramSharedShader(t *testing.T) {
	rec, ctx := newContext(t)
	vs := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	vs.Ownership = gpu.Shared
	require.NoError(t, vs.Create(vertexSrc))

	for _, name := range []string{"a", "b"} {
		fs := gpu.NewShader(ctx, name, gpu.FragmentShader)
		require.NoError(t, fs.Create(fragmentSrc))
		pr := gpu.NewProgram(ctx, name)
		require.NoError(t, pr.Create(vs, fs))
		assert.False(t, fs.IsCreated())
		assert.True(t, vs.IsCreated())
	}
	assert.Equal(t, 1, rec.Live("shader"))
	vs.Destroy()
	assert.Equal(t, 0, rec.Live("shader"))
}

func TestProgramLinkError(t *testing.T) {
	rec, ctx := newContext(t)
	rec.FailLink = true
	vs := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	vs.Ownership = gpu.Shared
	require.NoError(t, vs.Create(vertexSrc))
	fs := gpu.NewShader(ctx, "fragment", gpu.FragmentShader)
	require.NoError(t, fs.Create(fragmentSrc))

	pr := gpu.NewProgram(ctx, "test")
	err := pr.Create(vs, fs)
	var le *gpu.LinkError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "test", le.Program)
	assert.Equal(t, rec.LinkLog, le.Log)

	assert.False(t, pr.IsCreated())
	assert.Equal(t, 0, rec.Live("program"))
	assert.Len(t, rec.Called("DetachShader"), 2)
	assert.True(t, vs.IsCreated())
	assert.False(t, fs.IsCreated())
}

func TestProgramCreateFails(t *testing.T) {
	rec, ctx := newContext(t)
	vs := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	require.NoError(t, vs.Create(vertexSrc))
	rec.FailAlloc["program"] = true
	pr := gpu.NewProgram(ctx, "test")
	var rce *gpu.ResourceCreationError
	require.True(t, errors.As(pr.Create(vs), &rce))
	assert.Equal(t, "program", rce.Kind)
	assert.True(t, vs.IsCreated())
}

// fmtCall formats a call the way the recorder logs it.
func fmtCall(name string, args ...any) string {
	sa := make([]string, len(args))
	for i, a := range args {
		sa[i] = fmt.Sprint(a)
	}
	return name + "(" + strings.Join(sa, ", ") + ")"
}

func TestProgramRepeatedStage(t *testing.T) {
	rec, ctx := newContext(t)
	vs := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	require.NoError(t, vs.Create(vertexSrc))
	fs := gpu.NewShader(ctx, "fragment", gpu.FragmentShader)
	require.NoError(t, fs.Create(fragmentSrc))
	vh, fh := vs.Handle(), fs.Handle()

	pr := gpu.NewProgram(ctx, "test")
	rec.Reset()
	require.NoError(t, pr.Create(vs, fs, vs))
	assert.Len(t, rec.Called("AttachShader"), 2)
	assert.Equal(t, []string{fmtCall("DeleteShader", vh), fmtCall("DeleteShader", fh)}, rec.Called("DeleteShader"))
	assert.Equal(t, 0, rec.Live("shader"))
}

func TestProgramCreateTwice(t *testing.T) {
	rec, ctx := newContext(t)
	pr := newProgram(t, ctx)
	h := pr.Handle()

	vs := gpu.NewShader(ctx, "vertex", gpu.VertexShader)
	require.NoError(t, vs.Create(vertexSrc))
	rec.Reset()
	err := pr.Create(vs)
	var ace *gpu.AlreadyCreatedError
	require.True(t, errors.As(err, &ace))
	assert.Equal(t, "program", ace.Kind)
	assert.Empty(t, rec.Calls)
	assert.Equal(t, h, pr.Handle())
	assert.True(t, vs.IsCreated())
	assert.Equal(t, 1, rec.Live("program"))

	pr.Destroy()
	require.NoError(t, pr.Create(vs))
	assert.Equal(t, 1, rec.Live("program"))
}
