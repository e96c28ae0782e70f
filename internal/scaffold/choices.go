package scaffold

import (
	"fmt"
	"regexp"

	"github.com/claudecraft/create-claudecraft/internal/catalog"
)

var projectNamePattern = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)

// Choices is everything a full scaffold needs to know.
type Choices struct {
	ProjectName        string
	Bundle             catalog.BundleID
	SelectedSkills     []string
	IncludeHomepage    bool
	InitVersionControl bool
	// SkipInstall leaves out the dependency phase entirely.
	SkipInstall bool
}

// InitChoices is everything a merge into an existing project needs to know.
type InitChoices struct {
	SelectedSkills []string
}

// DefaultChoices is the non-interactive selection: every skill, the
// homepage and a git repository.
func DefaultChoices(projectName string) Choices {
	return Choices{
		ProjectName:        projectName,
		Bundle:             catalog.BundleEverything,
		SelectedSkills:     catalog.Names(),
		IncludeHomepage:    true,
		InitVersionControl: true,
	}
}

// DefaultInitChoices selects every skill.
func DefaultInitChoices() InitChoices {
	return InitChoices{SelectedSkills: catalog.Names()}
}

// ValidateProjectName checks name against [a-z0-9-]{1,64}.
func ValidateProjectName(name string) error {
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9-]{1,64}", name)
	}
	return nil
}

// Validate checks the project name, the bundle and that no skill is listed
// twice. Unknown skill names pass; they are skipped during the scaffold.
func (c Choices) Validate() error {
	if err := ValidateProjectName(c.ProjectName); err != nil {
		return err
	}
	if !catalog.ValidBundle(c.Bundle) {
		return fmt.Errorf("unknown bundle %q", c.Bundle)
	}
	return validateSkillSet(c.SelectedSkills)
}

// Validate checks that no skill is listed twice.
func (c InitChoices) Validate() error {
	return validateSkillSet(c.SelectedSkills)
}

func validateSkillSet(names []string) error {
	if len(uniqueNames(names)) != len(names) {
		return fmt.Errorf("skill selection lists a skill more than once")
	}
	return nil
}

// uniqueNames drops repeated names, keeping first occurrences in order.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
