// Package writer lays rendered artifacts out on disk as one module directory.
package writer

import (
	"errors"
	"os"
	"path"
	"path/filepath"

	oerrors "github.com/wpgen/cli/internal/errors"
	"github.com/wpgen/cli/internal/module"
	"github.com/wpgen/cli/internal/output"
	"github.com/wpgen/cli/internal/render"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Result describes a written module.
type Result struct {
	// Dir is the module directory, root joined with the module slug.
	Dir string

	// Files lists the written paths relative to Dir, in artifact order.
	Files []string
}

// Write writes artifacts into root/{slug}. The module directory is built
// in a staging directory beside it and swapped in with a rename, so a
// failed write leaves the previous contents, if any, untouched. A
// successful write replaces the whole directory.
func Write(root string, spec *module.Spec, artifacts []render.Artifact) (*Result, error) {
	if spec == nil {
		return nil, oerrors.NewWriteError(root, errors.New("no module to write"))
	}
	if err := validatePaths(artifacts); err != nil {
		return nil, err
	}

	slug := spec.Slug()
	dest := filepath.Join(root, slug)
	log := output.ModuleLogger(slug)

	if info, err := os.Stat(dest); err == nil && !info.IsDir() {
		return nil, oerrors.NewWriteError(dest, errors.New("exists and is not a directory"))
	}

	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, oerrors.NewWriteError(root, err)
	}

	staging, err := os.MkdirTemp(root, "."+slug+"-*")
	if err != nil {
		return nil, oerrors.NewWriteError(root, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = os.RemoveAll(staging)
		}
	}()
	log.Debug("staging module", "dir", staging)

	result := &Result{Dir: dest, Files: make([]string, 0, len(artifacts))}
	for _, a := range artifacts {
		target := filepath.Join(staging, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return nil, oerrors.NewWriteError(a.Path, err)
		}
		if err := os.WriteFile(target, a.Content, filePerm); err != nil {
			return nil, oerrors.NewWriteError(a.Path, err)
		}
		log.Debug("wrote file", "path", a.Path, "bytes", len(a.Content))
		result.Files = append(result.Files, a.Path)
	}

	// MkdirTemp creates the directory with mode 0700.
	if err := os.Chmod(staging, dirPerm); err != nil {
		return nil, oerrors.NewWriteError(staging, err)
	}

	if err := swap(staging, dest); err != nil {
		return nil, err
	}
	committed = true

	log.Debug("module written", "dir", dest, "files", len(result.Files))
	return result, nil
}

// swap replaces dest with staging. An existing dest is moved aside first
// and restored when the final rename fails.
func swap(staging, dest string) error {
	previous := ""
	if _, err := os.Stat(dest); err == nil {
		previous = staging + ".previous"
		if err := os.Rename(dest, previous); err != nil {
			return oerrors.NewWriteError(dest, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return oerrors.NewWriteError(dest, err)
	}

	if err := os.Rename(staging, dest); err != nil {
		if previous != "" {
			if rerr := os.Rename(previous, dest); rerr != nil {
				output.Error("could not restore previous module directory", "dir", dest, "backup", previous, "err", rerr)
			}
		}
		return oerrors.NewWriteError(dest, err)
	}

	if previous != "" {
		if err := os.RemoveAll(previous); err != nil {
			output.Warn("could not remove previous module directory", "path", previous, "err", err)
		}
	}
	return nil
}

// validatePaths rejects artifact paths that are empty, absolute, not
// clean, escape the module directory or appear twice.
func validatePaths(artifacts []render.Artifact) error {
	seen := make(map[string]struct{}, len(artifacts))
	for _, a := range artifacts {
		p := a.Path
		switch {
		case p == "":
			return oerrors.NewWriteError(p, errors.New("empty artifact path"))
		case path.IsAbs(p) || filepath.IsAbs(p):
			return oerrors.NewWriteError(p, errors.New("absolute artifact path"))
		case p == "." || path.Clean(p) != p || !filepath.IsLocal(filepath.FromSlash(p)):
			return oerrors.NewWriteError(p, errors.New("path escapes the module directory"))
		}
		if _, dup := seen[p]; dup {
			return oerrors.NewWriteError(p, errors.New("duplicate artifact path"))
		}
		seen[p] = struct{}{}
	}
	return nil
}
