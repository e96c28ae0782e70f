package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudecraft/create-claudecraft/internal/progress"
)

// existingProject writes a minimal project that already has src/ content.
func existingProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"mine"}`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "App.tsx"), []byte("mine\n"), 0644))
	return dir
}

func TestInitExistingLayout(t *testing.T) {
	dir := existingProject(t)
	r := &fakeRunner{}

	res, err := testEngine(testFS(), r).InitExisting(context.Background(), dir, InitChoices{SelectedSkills: []string{"brainstorming", "ui-skills"}}, nil)
	require.NoError(t, err)

	claude := filepath.Join(dir, ClaudeDir)
	assert.ElementsMatch(t, []string{"brainstorming", "ui-skills"}, entryNames(t, filepath.Join(claude, "skills")))
	assert.True(t, exists(filepath.Join(claude, "commands", "build.md")))
	assert.True(t, exists(filepath.Join(claude, "hooks", "format-on-save.sh")))
	assert.Equal(t, testSettings, readString(t, filepath.Join(claude, "settings.json")))
	assert.Equal(t, "# Template\n", readString(t, filepath.Join(dir, ClaudeDoc)))

	// Nothing outside .claude/ and CLAUDE.md changes.
	assert.Equal(t, "mine\n", readString(t, filepath.Join(dir, "src", "App.tsx")))
	assert.Equal(t, []string{"App.tsx"}, entryNames(t, filepath.Join(dir, "src")))
	assert.Equal(t, `{"name":"mine"}`, readString(t, filepath.Join(dir, "package.json")))

	assert.Equal(t, 5, res.FileCount)
	assert.Equal(t, 2, res.SkillCount)
	assert.Equal(t, InitCommandCount, res.CommandCount)
	assert.Zero(t, res.DependencyCount)
	assert.Equal(t, InitDiskUsage, res.DiskUsage)
	assert.Empty(t, r.calls)
}

func TestInitExistingProgress(t *testing.T) {
	dir := existingProject(t)
	var rec progress.Recorder

	_, err := testEngine(testFS(), &fakeRunner{}).InitExisting(context.Background(), dir, DefaultInitChoices(), rec.Func())
	require.NoError(t, err)
	require.NoError(t, rec.Check(progress.MergePlan()))

	var percents []int
	for _, ev := range rec.Events {
		percents = append(percents, ev.Percent)
	}
	assert.Equal(t, []int{10, 30, 50, 70, 85, 100}, percents)
	assert.Equal(t, ".claude/", rec.Events[0].Detail)
}

func TestInitExistingKeepsClaudeDoc(t *testing.T) {
	dir := existingProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ClaudeDoc), []byte("# Mine\n"), 0644))

	_, err := testEngine(testFS(), &fakeRunner{}).InitExisting(context.Background(), dir, DefaultInitChoices(), nil)
	require.NoError(t, err)
	assert.Equal(t, "# Mine\n", readString(t, filepath.Join(dir, ClaudeDoc)))
}

func TestInitExistingSkipsUnknownSkills(t *testing.T) {
	dir := existingProject(t)

	res, err := testEngine(testFS(), &fakeRunner{}).InitExisting(context.Background(), dir, InitChoices{SelectedSkills: []string{"nope", "systematic-debugging"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"systematic-debugging"}, entryNames(t, filepath.Join(dir, ClaudeDir, "skills")))
	assert.Equal(t, 2, res.SkillCount)
}

// P5
func TestInitExistingTwiceKeepsSettings(t *testing.T) {
	dir := existingProject(t)
	choices := InitChoices{SelectedSkills: []string{"brainstorming"}}

	_, err := testEngine(testFS(), &fakeRunner{}).InitExisting(context.Background(), dir, choices, nil)
	require.NoError(t, err)

	changed := testFS()
	changed["settings/settings.json"].Data = []byte(`{"changed":true}`)
	_, err = testEngine(changed, &fakeRunner{}).InitExisting(context.Background(), dir, choices, nil)
	require.NoError(t, err)

	assert.Equal(t, testSettings, readString(t, filepath.Join(dir, ClaudeDir, "settings.json")))
}

// Scenario C
func TestInitExistingPreservesUserSettings(t *testing.T) {
	dir := existingProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ClaudeDir), 0755))
	settings := filepath.Join(dir, ClaudeDir, "settings.json")
	require.NoError(t, os.WriteFile(settings, []byte(`{"user":true}`), 0644))

	choices := InitChoices{SelectedSkills: []string{"brainstorming", "systematic-debugging"}}
	_, err := testEngine(testFS(), &fakeRunner{}).InitExisting(context.Background(), dir, choices, nil)
	require.NoError(t, err)

	assert.Equal(t, `{"user":true}`, readString(t, settings))
	assert.DirExists(t, filepath.Join(dir, ClaudeDir, "skills", "brainstorming"))
	assert.DirExists(t, filepath.Join(dir, ClaudeDir, "skills", "systematic-debugging"))
}

func TestInitExistingCanceled(t *testing.T) {
	dir := existingProject(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testEngine(testFS(), &fakeRunner{}).InitExisting(ctx, dir, DefaultInitChoices(), nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, exists(filepath.Join(dir, ClaudeDir)))
}

func TestHasClaudeDir(t *testing.T) {
	dir := t.TempDir()
	ok, err := HasClaudeDir(dir)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, EnsureClaudeDirs(dir))
	ok, err = HasClaudeDir(dir)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasPackageJSON(t *testing.T) {
	assert.False(t, HasPackageJSON(t.TempDir()))
	assert.True(t, HasPackageJSON(existingProject(t)))
}

func TestCountFilesSkipsDependencies(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{
		"a.txt",
		"sub/b.txt",
		"node_modules/dep/index.js",
		".git/HEAD",
		"sub/node_modules/x.js",
	} {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}

	n, err := CountFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountFilesMissingDir(t *testing.T) {
	_, err := CountFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
