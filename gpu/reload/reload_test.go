// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reload

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glpipe/gpu"
	"cogentcore.org/glpipe/gpu/gltest"
)

const vertexSrc = "#version 410\nin vec2 pos;\nvoid main() { gl_Position = vec4(pos, 0, 1); }\n"

const fragmentSrc = "#version 410\nout vec4 color;\nvoid main() { color = vec4(1); }\n"

// writeFile replaces the file at path by renaming, so that a watcher
// never sees it partially written.
func writeFile(t *testing.T, path, src string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(src), 0666))
	require.NoError(t, os.Rename(tmp, path))
}

func sources(t *testing.T) (vert, frag string) {
	t.Helper()
	dir := t.TempDir()
	vert = filepath.Join(dir, "tri.vert")
	frag = filepath.Join(dir, "tri.frag")
	writeFile(t, vert, vertexSrc)
	writeFile(t, frag, fragmentSrc)
	return
}

func TestWatcher(t *testing.T) {
	vert, frag := sources(t)
	other := filepath.Join(filepath.Dir(vert), "notes.txt")
	w, err := NewWatcher(vert, frag)
	require.NoError(t, err)
	defer w.Close()

	assert.Empty(t, w.Pending())
	writeFile(t, other, "ignored")
	writeFile(t, frag, fragmentSrc+"\n")

	assert.Eventually(t, w.Changed, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{filepath.Clean(frag)}, w.Pending())

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestBuild(t *testing.T) {
	vert, frag := sources(t)
	rec := gltest.NewRecorder()
	ctx := gpu.NewContext(rec)

	pr, err := Build(ctx, "tri", func(pr *gpu.Program) { pr.PrepareInputLocation("pos", 0) },
		Source{gpu.VertexShader, vert}, Source{gpu.FragmentShader, frag})
	require.NoError(t, err)
	assert.True(t, pr.IsCreated())
	assert.Equal(t, gpu.Location(0), pr.InputLocation("pos"))
	assert.Equal(t, 0, rec.Live("shader"))

	// a failing stage leaves nothing behind
	writeFile(t, frag, "#error nope\n")
	_, err = Build(ctx, "tri", nil, Source{gpu.VertexShader, vert}, Source{gpu.FragmentShader, frag})
	var ce *gpu.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 0, rec.Live("shader"))
	assert.Equal(t, 1, rec.Live("program"))

	_, err = Build(ctx, "tri", nil, Source{gpu.VertexShader, filepath.Join(t.TempDir(), "none.vert")})
	assert.Error(t, err)
}

func TestProgramReload(t *testing.T) {
	vert, frag := sources(t)
	rec := gltest.NewRecorder()
	ctx := gpu.NewContext(rec)

	p, err := NewProgram(ctx, "tri", nil, Source{gpu.VertexShader, vert}, Source{gpu.FragmentShader, frag})
	require.NoError(t, err)
	first := p.Current()
	require.True(t, first.IsCreated())

	updated, err := p.Update()
	require.NoError(t, err)
	assert.False(t, updated)

	// a broken source keeps the current program
	writeFile(t, frag, "#error broken\n")
	require.Eventually(t, p.Watcher().Changed, 5*time.Second, 10*time.Millisecond)
	updated, err = p.Update()
	assert.False(t, updated)
	var ce *gpu.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Same(t, first, p.Current())
	assert.True(t, first.IsCreated())

	// fixing it swaps in a new program and destroys the old one
	writeFile(t, frag, fragmentSrc)
	require.Eventually(t, p.Watcher().Changed, 5*time.Second, 10*time.Millisecond)
	updated, err = p.Update()
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NotSame(t, first, p.Current())
	assert.False(t, first.IsCreated())
	assert.Equal(t, 1, rec.Live("program"))

	require.NoError(t, p.Close())
	assert.Nil(t, p.Current())
	assert.Equal(t, 0, rec.Live("program"))
}
