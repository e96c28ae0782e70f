package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// Runner is the set of external operations a scaffold invokes.
type Runner interface {
	InstallDependencies(ctx context.Context, dir string) error
	VCSInit(ctx context.Context, dir string) error
	VCSAddAll(ctx context.Context, dir string) error
	VCSCommit(ctx context.Context, dir, message string) error
	DiskUsage(path string) (string, error)
}

// Exec runs real processes.
type Exec struct {
	// InstallCommand is split on whitespace; the first field is the binary.
	InstallCommand string
	// Git is the git binary; defaults to "git".
	Git string
}

// New returns an Exec runner using installCommand for dependency installation.
func New(installCommand string) *Exec {
	return &Exec{InstallCommand: installCommand, Git: "git"}
}

// InstallDependencies runs the install command inside dir.
func (e *Exec) InstallDependencies(ctx context.Context, dir string) error {
	fields := strings.Fields(e.InstallCommand)
	if len(fields) == 0 {
		return fmt.Errorf("no install command configured")
	}

	bin, err := exec.LookPath(fields[0])
	if err != nil {
		return fmt.Errorf("%s is required but not found in PATH", fields[0])
	}

	return run(ctx, dir, bin, fields[1:]...)
}

// VCSInit runs `git init` inside dir.
func (e *Exec) VCSInit(ctx context.Context, dir string) error {
	git, err := e.git()
	if err != nil {
		return err
	}
	return run(ctx, dir, git, "init")
}

// VCSAddAll runs `git add .` inside dir.
func (e *Exec) VCSAddAll(ctx context.Context, dir string) error {
	git, err := e.git()
	if err != nil {
		return err
	}
	return run(ctx, dir, git, "add", ".")
}

// VCSCommit runs `git commit -m <message>` inside dir.
func (e *Exec) VCSCommit(ctx context.Context, dir, message string) error {
	git, err := e.git()
	if err != nil {
		return err
	}
	return run(ctx, dir, git, "commit", "-m", message)
}

// DiskUsage sums the size of every regular file under path and formats it
// like "4.2 MB".
func (e *Exec) DiskUsage(path string) (string, error) {
	var total uint64
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += uint64(info.Size())
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("measuring %s: %w", path, err)
	}
	return humanize.Bytes(total), nil
}

// git checks that git is available on PATH.
func (e *Exec) git() (string, error) {
	name := e.Git
	if name == "" {
		name = "git"
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("git is required but not found in PATH")
	}
	return bin, nil
}

func run(ctx context.Context, dir, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w\n%s", filepath.Base(bin), strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}
