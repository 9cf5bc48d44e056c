package data

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bundle creates a package root holding the given data files.
func bundle(t *testing.T, names ...string) (root string) {
	root = t.TempDir()
	for _, name := range names {
		fn := filepath.Join(root, Subdir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(fn, []byte("module core;\nendmodule\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// TempDir may itself sit behind a symlink (macOS /var).
	root, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestNew(t *testing.T) {
	assert := assert.New(t)

	root := bundle(t)
	loc, err := New(root)
	assert.NoError(err)
	assert.Equal(root, loc.Root)
	assert.Equal(filepath.Join(root, "system_verilog"), loc.DataRoot)
}

func TestNew_Symlink(t *testing.T) {
	assert := assert.New(t)

	root := bundle(t, "core.sv")
	link := filepath.Join(t.TempDir(), "cva5")
	if err := os.Symlink(root, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	loc, err := New(link)
	assert.NoError(err)
	assert.Equal(root, loc.Root)
	assert.Equal(filepath.Join(root, Subdir), loc.DataRoot)
}

func TestNew_Relative(t *testing.T) {
	assert := assert.New(t)

	root := bundle(t)
	t.Chdir(root)

	loc, err := New(".")
	assert.NoError(err)
	assert.Equal(root, loc.Root)
	assert.True(filepath.IsAbs(loc.DataRoot))
}

func TestLocator_File(t *testing.T) {
	assert := assert.New(t)

	root := bundle(t, "core.sv", "core/fetch.sv")
	loc, err := New(root)
	assert.NoError(err)

	fn, err := loc.File("core.sv")
	assert.NoError(err)
	assert.Equal(filepath.Join(root, "system_verilog", "core.sv"), fn)

	fn, err = loc.File("core/fetch.sv")
	assert.NoError(err)
	assert.Equal(filepath.Join(root, "system_verilog", "core", "fetch.sv"), fn)

	// Directories exist too.
	fn, err = loc.File("core")
	assert.NoError(err)
	assert.Equal(filepath.Join(root, "system_verilog", "core"), fn)

	// Normalized.
	fn, err = loc.File("core/../core.sv")
	assert.NoError(err)
	assert.Equal(filepath.Join(root, "system_verilog", "core.sv"), fn)
}

func TestLocator_FileMissing(t *testing.T) {
	assert := assert.New(t)

	root := bundle(t, "core.sv")
	loc, err := New(root)
	assert.NoError(err)

	fn, err := loc.File("missing.sv")
	assert.Error(err)
	assert.Empty(fn)

	var notFound *ErrNotFound
	assert.True(errors.As(err, &notFound))
	assert.Equal("missing.sv", notFound.Name)
	assert.Equal(filepath.Join(root, Subdir, "missing.sv"), notFound.Path)
	assert.Contains(err.Error(), "missing.sv")

	assert.ErrorIs(err, fs.ErrNotExist)
	assert.ErrorIs(err, &ErrNotFound{})
}

func TestLocator_FileNoBundle(t *testing.T) {
	assert := assert.New(t)

	loc, err := New(filepath.Join(t.TempDir(), "not-installed"))
	assert.NoError(err)

	_, err = loc.File("core.sv")
	assert.ErrorIs(err, fs.ErrNotExist)
}

func TestLocator_FileConcurrent(t *testing.T) {
	assert := assert.New(t)

	root := bundle(t, "core.sv")
	loc, err := New(root)
	assert.NoError(err)

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for n := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := "core.sv"
			if n%2 == 1 {
				name = "missing.sv"
			}
			_, errs[n] = loc.File(name)
		}()
	}
	wg.Wait()

	for n, err := range errs {
		if n%2 == 1 {
			assert.Error(err)
		} else {
			assert.NoError(err)
		}
	}
}

func TestLocator_Files(t *testing.T) {
	assert := assert.New(t)

	root := bundle(t, "core.sv", "core/fetch.sv", "core/decode.sv", "test_benches/sim.cc", "README.md")
	loc, err := New(root)
	assert.NoError(err)

	all := slices.Sorted(loc.Files())
	assert.Equal([]string{"README.md", "core.sv", "core/decode.sv", "core/fetch.sv", "test_benches/sim.cc"}, all)

	sv := slices.Sorted(loc.Files("*.sv"))
	assert.Equal([]string{"core.sv", "core/decode.sv", "core/fetch.sv"}, sv)

	mixed := slices.Collect(loc.Files("*.cc", "*.md"))
	assert.Equal([]string{"test_benches/sim.cc", "README.md"}, mixed)

	assert.Empty(slices.Collect(loc.Files("[")))
	assert.Empty(slices.Collect(loc.Files("*.vhd")))

	// Early stop.
	for name := range loc.Files() {
		assert.NotEmpty(name)
		break
	}
}

func TestLocator_FS(t *testing.T) {
	assert := assert.New(t)

	root := bundle(t, "core.sv")
	loc, err := New(root)
	assert.NoError(err)

	content, err := fs.ReadFile(loc.FS(), "core.sv")
	assert.NoError(err)
	assert.Contains(string(content), "module core")
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	_, source, _, ok := runtime.Caller(0)
	if !ok {
		t.Skip("no caller information")
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(source))
	assert.NoError(err)

	loc := Default()
	assert.Same(loc, Default())
	assert.Equal(dir, loc.Root)
	assert.Equal(filepath.Join(dir, "system_verilog"), loc.DataRoot)
	assert.Equal(loc.DataRoot, DataLocation())

	// Independent of the working directory.
	t.Chdir(t.TempDir())
	assert.Equal(filepath.Join(dir, "system_verilog"), DataLocation())
}

func TestFile_Bundled(t *testing.T) {
	assert := assert.New(t)

	fn, err := File("examples/sw/main.c")
	assert.NoError(err)
	assert.Equal(filepath.Join(DataLocation(), "examples", "sw", "main.c"), fn)

	_, err = File("missing.sv")
	assert.ErrorIs(err, fs.ErrNotExist)

	names := slices.Collect(Default().Files("*.h"))
	assert.Contains(names, "test_benches/verilator/AXIMem.h")
}
