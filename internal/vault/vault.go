// Package vault exposes a vault directory on disk as a read-mostly folder tree.
package vault

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taigrr/combine-notes/internal/pathfilter"
	"github.com/taigrr/combine-notes/internal/types"
)

// Service provides tree operations over an Obsidian-style vault.
type Service struct {
	vaultPath  string
	pathFilter *pathfilter.PathFilter
}

// New creates a new vault Service rooted at vaultPath.
func New(vaultPath string, pf *pathfilter.PathFilter) *Service {
	absPath, _ := filepath.Abs(vaultPath)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Service{
		vaultPath:  absPath,
		pathFilter: pf,
	}
}

// Root returns the vault root folder. Its name is the vault directory name.
func (s *Service) Root() types.Folder {
	return types.Folder{
		Path: types.RootPath,
		Name: filepath.Base(s.vaultPath),
	}
}

// Name returns the vault name.
func (s *Service) Name() string {
	return filepath.Base(s.vaultPath)
}

// GetVaultPath returns the absolute vault path.
func (s *Service) GetVaultPath() string {
	return s.vaultPath
}

// PathFilter returns the filter used to hide entries.
func (s *Service) PathFilter() *pathfilter.PathFilter {
	return s.pathFilter
}

// normalize converts user input into a clean vault path without a leading slash.
// The root is returned as "".
func normalize(vaultPath string) string {
	p := strings.TrimSpace(vaultPath)
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// ResolvePath resolves a vault path to an absolute path on disk and validates it.
func (s *Service) ResolvePath(vaultPath string) (string, error) {
	normalizedPath := strings.TrimPrefix(strings.TrimSpace(vaultPath), "/")

	fullPath := filepath.Join(s.vaultPath, filepath.FromSlash(normalizedPath))
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve path", goerr.V("path", vaultPath))
	}

	// Security check: ensure path is within vault
	relPath, err := filepath.Rel(s.vaultPath, absPath)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve path", goerr.V("path", vaultPath))
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", goerr.New("path traversal not allowed", goerr.V("path", vaultPath))
	}

	return absPath, nil
}

// Resolve looks up a vault path. Ignored and missing paths are absent.
func (s *Service) Resolve(vaultPath string) (types.Entry, bool) {
	fullPath, err := s.ResolvePath(vaultPath)
	if err != nil {
		return types.Entry{}, false
	}

	rel := normalize(vaultPath)
	if rel == "" {
		root := s.Root()
		return types.Entry{Folder: &root}, true
	}
	if s.isHidden(rel) {
		return types.Entry{}, false
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return types.Entry{}, false
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return types.Entry{}, false
	}

	return newEntry(rel, info.Name(), info.IsDir(), info.Mode().IsRegular()), true
}

// isHidden reports whether the path or any of its ancestors is ignored.
func (s *Service) isHidden(rel string) bool {
	parts := strings.Split(rel, "/")
	for i := range parts {
		if s.pathFilter.IsIgnored(strings.Join(parts[:i+1], "/")) {
			return true
		}
	}
	return false
}

// Children lists the visible entries of a folder in directory order.
func (s *Service) Children(ctx context.Context, folder types.Folder) ([]types.Entry, error) {
	fullPath, err := s.ResolvePath(folder.Path)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(err, "folder not found", goerr.V("path", folder.Path))
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, goerr.Wrap(err, "permission denied", goerr.V("path", folder.Path))
		}
		return nil, goerr.Wrap(err, "failed to list folder", goerr.V("path", folder.Path))
	}

	parent := normalize(folder.Path)
	var entries []types.Entry
	for _, entry := range dirEntries {
		entryPath := entry.Name()
		if parent != "" {
			entryPath = parent + "/" + entry.Name()
		}

		if s.pathFilter.IsIgnored(entryPath) {
			continue
		}

		if entry.IsDir() || entry.Type().IsRegular() {
			entries = append(entries, newEntry(entryPath, entry.Name(), entry.IsDir(), entry.Type().IsRegular()))
		}
	}

	return entries, nil
}

func newEntry(vaultPath, name string, isDir, isRegular bool) types.Entry {
	if isDir {
		return types.Entry{Folder: &types.Folder{Path: vaultPath, Name: name}}
	}
	if !isRegular {
		return types.Entry{}
	}
	return types.Entry{File: &types.File{
		Path:      vaultPath,
		Name:      name,
		Extension: Extension(name),
	}}
}

// Extension returns the text after the last dot of a file name, without the dot.
// Names without a dot, or whose only dot is the first character, have no extension.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return ""
	}
	return name[idx+1:]
}

// Read returns the full text of a file.
func (s *Service) Read(ctx context.Context, file types.File) (string, error) {
	fullPath, err := s.ResolvePath(file.Path)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", goerr.Wrap(err, "file not found", goerr.V("path", file.Path))
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", goerr.Wrap(err, "permission denied", goerr.V("path", file.Path))
		}
		return "", goerr.Wrap(err, "failed to read file", goerr.V("path", file.Path))
	}

	return string(content), nil
}

// CreateDirectory creates a folder and any missing parents.
func (s *Service) CreateDirectory(vaultPath string) error {
	fullPath, err := s.ResolvePath(vaultPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(fullPath, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", vaultPath))
	}

	return nil
}

// CreateFile writes a new file. It fails if the file already exists.
func (s *Service) CreateFile(vaultPath, content string) (types.File, error) {
	fullPath, err := s.ResolvePath(vaultPath)
	if err != nil {
		return types.File{}, err
	}

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return types.File{}, goerr.Wrap(err, "file already exists", goerr.V("path", vaultPath))
		}
		return types.File{}, goerr.Wrap(err, "failed to create file", goerr.V("path", vaultPath))
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(fullPath)
		return types.File{}, goerr.Wrap(err, "failed to write file", goerr.V("path", vaultPath))
	}
	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return types.File{}, goerr.Wrap(err, "failed to write file", goerr.V("path", vaultPath))
	}

	rel := normalize(vaultPath)
	name := path.Base(rel)
	return types.File{Path: rel, Name: name, Extension: Extension(name)}, nil
}

// ListFolders returns every visible folder path, sorted, with the root first.
func (s *Service) ListFolders(ctx context.Context) ([]string, error) {
	var folders []string
	if err := s.collectFolders(ctx, s.Root(), &folders); err != nil {
		return nil, err
	}
	sort.Strings(folders)

	return append([]string{types.RootPath}, folders...), nil
}

func (s *Service) collectFolders(ctx context.Context, folder types.Folder, out *[]string) error {
	children, err := s.Children(ctx, folder)
	if err != nil {
		return err
	}

	for _, child := range children {
		if child.Folder == nil {
			continue
		}
		*out = append(*out, child.Folder.Path)
		if err := s.collectFolders(ctx, *child.Folder, out); err != nil {
			return err
		}
	}

	return nil
}
