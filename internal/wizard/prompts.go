package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/claudecraft/create-claudecraft/internal/branding"
	"github.com/claudecraft/create-claudecraft/internal/catalog"
	"github.com/claudecraft/create-claudecraft/internal/scaffold"
)

// ErrCanceled is returned when the user aborts a form.
var ErrCanceled = errors.New("prompt canceled")

// Custom selections start with the first few skills of each group ticked.
const (
	preselectedWorkflow = 6
	preselectedDesign   = 4
)

// RunNew asks for a project name, a bundle, the homepage and git.
// Names that already exist in workDir are refused at the prompt.
func RunNew(workDir, defaultName string) (*scaffold.Choices, error) {
	choices := scaffold.Choices{
		ProjectName:        defaultName,
		Bundle:             catalog.BundleEverything,
		IncludeHomepage:    true,
		InitVersionControl: true,
	}

	form := huh.NewForm(
		huh.NewGroup(
			header("New project"),
			huh.NewInput().
				Title("[1/4] Project name").
				Description("lowercase · numbers · dashes").
				Placeholder(defaultName).
				Value(&choices.ProjectName).
				Validate(nameValidator(workDir)),
		),
		huh.NewGroup(
			bundleSelect(&choices.Bundle).Title("[2/4] How much help do you want?"),
		),
	)
	if err := run(form); err != nil {
		return nil, err
	}

	skills, err := pickSkills(choices.Bundle)
	if err != nil {
		return nil, err
	}
	choices.SelectedSkills = skills

	form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("[3/4] Include the example homepage?").
				Description("+6 files · you can delete it later").
				Affirmative("Yes").
				Negative("No, blank App.tsx").
				Value(&choices.IncludeHomepage),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("[4/4] Initialize git?").
				Description("init + commit · or suffer later").
				Affirmative("Yes").
				Negative("No").
				Value(&choices.InitVersionControl),
		),
	)
	if err := run(form); err != nil {
		return nil, err
	}
	return &choices, nil
}

// RunInit asks only for the skill selection.
func RunInit() (*scaffold.InitChoices, error) {
	bundle := catalog.BundleEverything
	form := huh.NewForm(
		huh.NewGroup(
			header("Add skills to this project"),
			bundleSelect(&bundle).Title("How much help do you want?"),
		),
	)
	if err := run(form); err != nil {
		return nil, err
	}

	skills, err := pickSkills(bundle)
	if err != nil {
		return nil, err
	}
	return &scaffold.InitChoices{SelectedSkills: skills}, nil
}

// header is the note opening each wizard.
func header(description string) *huh.Note {
	return huh.NewNote().Title(headerTitle()).Description(description)
}

func headerTitle() string {
	return branding.DisplayName() + " · " + branding.Tagline()
}

// pickSkills resolves a bundle, prompting per group for BundleCustom.
func pickSkills(bundle catalog.BundleID) ([]string, error) {
	if skills, ok := catalog.BundleSkills(bundle); ok {
		return skills, nil
	}

	var workflow, design []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select workflow skills").
				Description("space: toggle · enter: confirm").
				Options(skillOptions(catalog.GroupWorkflow, preselectedWorkflow)...).
				Value(&workflow),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select design skills").
				Description("space: toggle · enter: confirm").
				Options(skillOptions(catalog.GroupDesign, preselectedDesign)...).
				Value(&design),
		),
	)
	if err := run(form); err != nil {
		return nil, err
	}
	return append(workflow, design...), nil
}

func bundleSelect(value *catalog.BundleID) *huh.Select[catalog.BundleID] {
	return huh.NewSelect[catalog.BundleID]().
		Options(bundleOptions()...).
		Value(value)
}

func bundleOptions() []huh.Option[catalog.BundleID] {
	var opts []huh.Option[catalog.BundleID]
	for _, b := range catalog.Bundles() {
		label := fmt.Sprintf("%s · %s · %d skills", b.Title, b.Description, len(b.Skills))
		opts = append(opts, huh.NewOption(label, b.ID))
	}
	return append(opts, huh.NewOption("Let Me Pick · Control freak? Respect.", catalog.BundleCustom))
}

// skillOptions lists a group's skills with the first n selected.
func skillOptions(group catalog.Group, n int) []huh.Option[string] {
	skills := catalog.ByGroup(group)
	opts := make([]huh.Option[string], 0, len(skills))
	for i, s := range skills {
		label := fmt.Sprintf("%-32s %s", s.Name, s.Description)
		opts = append(opts, huh.NewOption(label, s.Name).Selected(i < n))
	}
	return opts
}

// nameValidator checks the name format and that nothing named so exists in workDir.
func nameValidator(workDir string) func(string) error {
	return func(name string) error {
		if name == "" {
			return errors.New("required")
		}
		if err := scaffold.ValidateProjectName(name); err != nil {
			return errors.New("lowercase, numbers, dashes only, max 64 chars")
		}
		if _, err := os.Lstat(filepath.Join(workDir, name)); err == nil {
			return fmt.Errorf("directory %q already exists", name)
		}
		return nil
	}
}

func run(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCanceled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}
