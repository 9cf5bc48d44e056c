// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package data

import (
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ezrec/cva5data/internal"
)

const (
	// Subdir is the directory, relative to the package root, holding the bundle.
	Subdir = "system_verilog"
	// Source is the upstream repository of the bundled core.
	Source = "https://github.com/openhwgroup/cva5"
)

// Locator resolves names inside a bundle directory.
// A Locator is immutable and safe for concurrent use.
type Locator struct {
	Root     string // Package root, absolute and symlink resolved.
	DataRoot string // Root joined with Subdir.
}

// New returns a Locator for the bundle installed under root.
func New(root string) (loc *Locator, err error) {
	root, err = canonical(root)
	if err != nil {
		return
	}

	loc = &Locator{
		Root:     root,
		DataRoot: filepath.Join(root, Subdir),
	}

	return
}

// canonical makes path absolute, following symlinks when it exists.
func canonical(name string) (abs string, err error) {
	abs, err = filepath.Abs(name)
	if err != nil {
		return
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Not there yet; the absolute form is as good as it gets.
		err = nil
		return
	}

	abs = resolved
	return
}

var (
	defaultLocator *Locator
	defaultOnce    sync.Once
)

// Default returns the Locator for the bundle shipped with this package.
func Default() *Locator {
	defaultOnce.Do(func() {
		defaultLocator = &Locator{}
		defaultLocator.Root = packageRoot()
		defaultLocator.DataRoot = filepath.Join(defaultLocator.Root, Subdir)
	})
	return defaultLocator
}

// packageRoot is the directory of this source file, or of the running
// executable when the binary was built without source paths.
func packageRoot() string {
	_, source, _, ok := runtime.Caller(0)
	if ok && filepath.IsAbs(source) {
		if resolved, err := canonical(source); err == nil {
			return filepath.Dir(resolved)
		}
	}

	exe, err := os.Executable()
	if err == nil {
		if resolved, err := canonical(exe); err == nil {
			return filepath.Dir(resolved)
		}
	}

	dir, _ := canonical(".")
	return dir
}

// DataLocation is the data root of the Default locator.
func DataLocation() string {
	return Default().DataRoot
}

// File resolves name in the Default locator.
func File(name string) (string, error) {
	return Default().File(name)
}

// File returns the absolute path of name inside the data root.
// If nothing exists there, the error is an *ErrNotFound.
func (loc *Locator) File(name string) (fn string, err error) {
	fn, err = filepath.Abs(filepath.Join(loc.DataRoot, name))
	if err != nil {
		return
	}

	_, err = os.Stat(fn)
	if err != nil {
		err = &ErrNotFound{Name: name, Path: fn, Err: err}
		fn = ""
		return
	}

	return
}

// FS returns a read-only file system rooted at the data root.
func (loc *Locator) FS() fs.FS {
	return os.DirFS(loc.DataRoot)
}

// Files lists the regular files in the bundle whose base names match any
// of the path.Match patterns, as slash separated names relative to the
// data root. With no patterns, every file is listed. Each pattern is a
// separate walk, so a file matching two patterns is listed twice.
// Malformed patterns match nothing.
func (loc *Locator) Files(patterns ...string) iter.Seq[string] {
	if len(patterns) == 0 {
		return loc.walk("*")
	}

	seqs := make([]iter.Seq[string], 0, len(patterns))
	for _, pattern := range patterns {
		seqs = append(seqs, loc.walk(pattern))
	}

	return internal.IterSeqConcat(seqs...)
}

func (loc *Locator) walk(pattern string) iter.Seq[string] {
	return func(yield func(name string) bool) {
		filesys := loc.FS()
		_ = fs.WalkDir(filesys, ".", func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable directories are skipped.
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			ok, _ := path.Match(pattern, d.Name())
			if !ok {
				return nil
			}
			if !yield(name) {
				return fs.SkipAll
			}
			return nil
		})
	}
}
