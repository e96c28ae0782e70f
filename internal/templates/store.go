package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/claudecraft/create-claudecraft/internal/catalog"
)

//go:embed all:files
var embedded embed.FS

// Paths inside a template store. Store paths always use forward slashes.
const (
	BaseDir      = "base"
	SkillsDir    = "skills"
	CommandsDir  = "commands"
	HooksDir     = "hooks"
	SettingsDir  = "settings"
	HomepageDir  = "homepage"
	AppEntry     = "app/App.tsx"
	ClaudeDoc    = "base/CLAUDE.md"
	PackageJSON  = "base/package.json"
	ManifestFile = "store.yaml"
	SkillFile    = "SKILL.md"
)

// SourceDirs are copied into <project>/src/<dir>, in this order.
var SourceDirs = []string{"components", "context", "lib", "types"}

// RootFiles are copied into <project>/src/<file>, in this order.
var RootFiles = []string{"main.tsx", "index.css", "vite-env.d.ts"}

// Store is a read-only tree of template assets.
type Store struct {
	fsys   fs.FS
	origin string
}

// New wraps fsys. origin is only used in messages.
func New(fsys fs.FS, origin string) *Store {
	return &Store{fsys: fsys, origin: origin}
}

// Embedded returns the store compiled into the binary.
func Embedded() *Store {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return New(sub, "embedded")
}

// FromDir opens an on-disk template store.
func FromDir(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening template store %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template store %s is not a directory", dir)
	}
	return New(os.DirFS(dir), dir), nil
}

// Origin describes where the store was loaded from.
func (s *Store) Origin() string { return s.origin }

// Exists reports whether name is present in the store.
func (s *Store) Exists(name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	_, err := fs.Stat(s.fsys, name)
	return err == nil
}

// IsDir reports whether name is a directory in the store.
func (s *Store) IsDir(name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(s.fsys, name)
	return err == nil && info.IsDir()
}

// SkillSource resolves a skill's directory, checking the workflow subtree
// before the design subtree. The catalog group is not consulted.
func (s *Store) SkillSource(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", false
	}
	for _, g := range catalog.Groups {
		dir := path.Join(SkillsDir, string(g), name)
		if s.IsDir(dir) {
			return dir, true
		}
	}
	return "", false
}

// Files lists the regular files directly inside dir, in lexical order.
// A missing dir yields no files and no error.
func (s *Store) Files(dir string) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && !shouldExclude(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// ReadFile returns the content of a store file.
func (s *Store) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	return data, nil
}
