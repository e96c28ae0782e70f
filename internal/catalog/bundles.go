package catalog

// BundleID names a predefined skill selection.
type BundleID string

const (
	BundleEverything BundleID = "everything"
	BundleDesigner   BundleID = "designer"
	BundleWorkflow   BundleID = "workflow"
	// BundleCustom has no precomputed skills; the caller supplies them.
	BundleCustom BundleID = "custom"
)

// Bundle is a named subset of skills plus display metadata.
type Bundle struct {
	ID          BundleID
	Title       string
	Description string
	Skills      []string
	Commands    int
	Files       int
}

var designerSkills = []string{
	"react-best-practices",
	"ui-skills",
	"a11y-audit",
	"testing-patterns",
	"seo-review",
	"systematic-debugging",
	"brainstorming",
	"writing-plans",
	"verification-before-completion",
	"design-polish",
	"visual-iteration",
	"ralph-wiggum-loops",
	"figma-to-code",
}

// Bundles returns the three predefined bundles.
func Bundles() []Bundle {
	return []Bundle{
		{
			ID:          BundleEverything,
			Title:       "Everything",
			Description: "All of it. No restraint.",
			Skills:      Names(),
			Commands:    6,
			Files:       48,
		},
		{
			ID:          BundleDesigner,
			Title:       "Designer Essentials",
			Description: "UI, a11y, Figma, and enough process to stay sane.",
			Skills:      append([]string(nil), designerSkills...),
			Commands:    4,
			Files:       35,
		},
		{
			ID:          BundleWorkflow,
			Title:       "Workflow Only",
			Description: "Process without opinions.",
			Skills:      names(ByGroup(GroupWorkflow)),
			Commands:    3,
			Files:       28,
		},
	}
}

// LookupBundle returns a predefined bundle. BundleCustom is never found.
func LookupBundle(id BundleID) (Bundle, bool) {
	for _, b := range Bundles() {
		if b.ID == id {
			return b, true
		}
	}
	return Bundle{}, false
}

// BundleSkills returns the precomputed skill list for a bundle.
func BundleSkills(id BundleID) ([]string, bool) {
	b, ok := LookupBundle(id)
	if !ok {
		return nil, false
	}
	return b.Skills, true
}

// ValidBundle reports whether id names a bundle, including BundleCustom.
func ValidBundle(id BundleID) bool {
	switch id {
	case BundleEverything, BundleDesigner, BundleWorkflow, BundleCustom:
		return true
	}
	return false
}

func names(ss []Skill) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Name
	}
	return out
}
