package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/claudecraft/create-claudecraft/internal/manifest"
	"github.com/claudecraft/create-claudecraft/internal/progress"
	"github.com/claudecraft/create-claudecraft/internal/runner"
	"github.com/claudecraft/create-claudecraft/internal/templates"
)

// DefaultInstallLabel is shown as the dependency phase detail when the
// engine has no InstallLabel.
const DefaultInstallLabel = "bun install"

// sourceProgress is the progress reported before copying a source directory.
var sourceProgress = map[string]int{
	"components": 60,
	"context":    65,
}

// Engine materializes projects from Store, delegating processes to Runner.
type Engine struct {
	Store  *templates.Store
	Runner runner.Runner

	// CommitMessage is used for the initial commit.
	CommitMessage string
	// InstallLabel names the install command in progress events.
	InstallLabel string
	// Now defaults to time.Now.
	Now func() time.Time
}

// New returns an engine with the given store and runner.
func New(store *templates.Store, r runner.Runner, commitMessage string) *Engine {
	return &Engine{
		Store:         store,
		Runner:        r,
		CommitMessage: commitMessage,
		Now:           time.Now,
	}
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Engine) installLabel() string {
	if e.InstallLabel == "" {
		return DefaultInstallLabel
	}
	return e.InstallLabel
}

// Scaffold creates workDir/<ProjectName> and fills it from the store.
//
// An existing target fails with a KindDirectoryExists error before anything
// is written. An install failure returns KindInstallFailed and leaves the
// written files in place. Version control failures are never reported.
func (e *Engine) Scaffold(ctx context.Context, workDir string, choices Choices, onProgress progress.Func) (*Result, error) {
	start := e.now()

	if err := choices.Validate(); err != nil {
		return nil, err
	}

	targetDir := filepath.Join(workDir, choices.ProjectName)
	if _, err := os.Lstat(targetDir); err == nil {
		return nil, NewDirectoryExists(choices.ProjectName)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", targetDir, err)
	}

	if err := os.MkdirAll(targetDir, templates.DirPerm); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}
	onProgress.Emit(progress.PhaseScaffolding, 0, "project directory")

	warnings, err := e.materialize(targetDir, choices, onProgress)
	if err != nil {
		return nil, err
	}
	onProgress.Emit(progress.PhaseScaffolding, 100, "done")

	if !choices.SkipInstall {
		onProgress.Emit(progress.PhaseDependencies, 0, e.installLabel())
		if err := e.Runner.InstallDependencies(ctx, targetDir); err != nil {
			return nil, NewInstallFailed(err)
		}
		onProgress.Emit(progress.PhaseDependencies, 100, "done")
	}

	if choices.InitVersionControl {
		onProgress.Emit(progress.PhaseGitInit, 0, ".git/")
		// A project without a repository is still a finished project.
		_ = e.initVersionControl(ctx, targetDir)
		onProgress.Emit(progress.PhaseGitInit, 100, "done")
	}

	elapsed := e.now().Sub(start)

	files, err := CountFiles(targetDir)
	if err != nil {
		return nil, err
	}
	disk, err := e.Runner.DiskUsage(targetDir)
	if err != nil {
		disk = DiskUsageFallback
	}

	result := &Result{
		FileCount:       files,
		SkillCount:      len(choices.SelectedSkills),
		CommandCount:    ScaffoldCommandCount,
		Elapsed:         elapsed,
		DependencyCount: DependencyCount,
		DiskUsage:       disk,
		Warnings:        warnings,
	}
	if choices.SkipInstall {
		result.DependencyCount = 0
	}
	return result, nil
}

// materialize writes every file of a new project into targetDir and returns
// package.json schema findings as warnings.
func (e *Engine) materialize(targetDir string, choices Choices, onProgress progress.Func) ([]string, error) {
	onProgress.Emit(progress.PhaseScaffolding, 10, "base files")
	if _, err := e.Store.CopyTree(templates.BaseDir, targetDir); err != nil {
		return nil, err
	}

	if err := EnsureClaudeDirs(targetDir); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 30, "skills")
	if err := e.copySkills(targetDir, choices.SelectedSkills); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 50, "commands")
	if err := e.copyCommands(targetDir); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 55, "hooks")
	if err := e.copyHooks(targetDir); err != nil {
		return nil, err
	}

	// A fresh project always takes the store's settings.
	if err := e.copySettings(targetDir, true); err != nil {
		return nil, err
	}

	srcDir := filepath.Join(targetDir, SrcDir)
	for _, dir := range templates.SourceDirs {
		if percent, ok := sourceProgress[dir]; ok {
			onProgress.Emit(progress.PhaseScaffolding, percent, dir)
		}
		if _, err := e.Store.CopyTree(dir, filepath.Join(srcDir, dir)); err != nil {
			return nil, err
		}
	}

	onProgress.Emit(progress.PhaseScaffolding, 70, "pages")
	if err := e.writePages(srcDir, choices.IncludeHomepage); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 80, "package.json")
	warnings, err := e.rewritePackage(targetDir, choices.ProjectName)
	if err != nil {
		return nil, err
	}

	for _, name := range templates.RootFiles {
		if _, err := e.Store.CopyFile(name, filepath.Join(srcDir, name)); err != nil {
			return nil, err
		}
	}
	return warnings, nil
}

// writePages fills src/pages and src/App.tsx from the homepage template,
// or with placeholders when the homepage is not wanted.
func (e *Engine) writePages(srcDir string, homepage bool) error {
	pagesDir := filepath.Join(srcDir, PagesDir)
	if err := os.MkdirAll(pagesDir, templates.DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", pagesDir, err)
	}

	if homepage {
		if _, err := e.Store.CopyTree(templates.HomepageDir, pagesDir); err != nil {
			return err
		}
		_, err := e.Store.CopyFile(templates.AppEntry, filepath.Join(srcDir, AppFile))
		return err
	}

	placeholders := []struct {
		path    string
		content string
	}{
		{filepath.Join(srcDir, AppFile), placeholderApp},
		{filepath.Join(pagesDir, NotFoundFile), placeholderNotFound},
	}
	for _, p := range placeholders {
		if err := os.WriteFile(p.path, []byte(p.content), templates.FilePerm); err != nil {
			return fmt.Errorf("writing %s: %w", p.path, err)
		}
	}
	return nil
}

// rewritePackage sets the project name in targetDir/package.json and returns
// schema findings. A project without package.json is left alone.
func (e *Engine) rewritePackage(targetDir, name string) ([]string, error) {
	pkgPath := filepath.Join(targetDir, manifest.FileName)
	if _, err := os.Stat(pkgPath); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err := manifest.RewriteName(pkgPath, name); err != nil {
		return nil, err
	}

	result, err := manifest.ValidateFile(pkgPath)
	if err != nil {
		return nil, err
	}
	var warnings []string
	for _, issue := range result.Issues {
		warnings = append(warnings, manifest.FileName+": "+issue.String())
	}
	return warnings, nil
}

// initVersionControl runs init, add and commit, stopping at the first failure.
func (e *Engine) initVersionControl(ctx context.Context, dir string) error {
	if err := e.Runner.VCSInit(ctx, dir); err != nil {
		return err
	}
	if err := e.Runner.VCSAddAll(ctx, dir); err != nil {
		return err
	}
	return e.Runner.VCSCommit(ctx, dir, e.CommitMessage)
}
