package catalog

import "fmt"

// Group classifies a skill.
type Group string

const (
	GroupWorkflow Group = "workflow"
	GroupDesign   Group = "design"
)

// Groups lists every group in resolution order.
var Groups = []Group{GroupWorkflow, GroupDesign}

// Skill is a named guidance document copied into .claude/skills/<Name>.
type Skill struct {
	Name        string
	Description string
	Group       Group
	Bytes       int // size estimate shown by the wizard
}

var skills = []Skill{
	// Workflow (via obra/superpowers)
	{"brainstorming", "poke holes before you build", GroupWorkflow, 2800},
	{"writing-plans", "scope creep prevention", GroupWorkflow, 3200},
	{"executing-plans", "checkpoints for the anxious", GroupWorkflow, 2400},
	{"systematic-debugging", "denial → anger → acceptance → fix", GroupWorkflow, 8500},
	{"test-driven-development", "write the test first, cry later", GroupWorkflow, 3100},
	{"verification-before-completion", "did you actually check?", GroupWorkflow, 1800},
	{"requesting-code-review", "brace for feedback", GroupWorkflow, 2200},
	{"receiving-code-review", "they meant well", GroupWorkflow, 1900},
	{"using-git-worktrees", "branch isolation therapy", GroupWorkflow, 2100},
	{"finishing-a-development-branch", "merge it or delete it", GroupWorkflow, 1700},
	{"subagent-driven-development", "outsource to yourself", GroupWorkflow, 4200},
	{"dispatching-parallel-agents", "fake productivity, real results", GroupWorkflow, 1600},
	{"writing-skills", "teach Claude your ways", GroupWorkflow, 5800},
	{"using-superpowers", "RTFM energy", GroupWorkflow, 1200},

	// Design
	{"react-best-practices", "fewer re-renders, more peace", GroupDesign, 4200},
	{"testing-patterns", "tests that catch bugs", GroupDesign, 3800},
	{"ui-skills", "CSS that cooperates", GroupDesign, 2900},
	{"a11y-audit", "WCAG compliance therapy", GroupDesign, 3400},
	{"seo-review", "feed the algorithm", GroupDesign, 2100},
	{"og-image", "cards worth clicking", GroupDesign, 1800},
	{"microcopy", "interface text that helps", GroupDesign, 2200},
	{"sitemap-generator", "crawler food", GroupDesign, 1400},
	{"json-ld", "structured data for bots", GroupDesign, 1600},
	{"figma-to-code", "pixel-perfect from Figma", GroupDesign, 3200},
	{"design-polish", "systematic polish passes", GroupDesign, 2400},
	{"visual-iteration", "mockup to code loop", GroupDesign, 2100},
	{"ralph-wiggum-loops", "sleep while Claude ships", GroupDesign, 6800},
}

var byName = func() map[string]Skill {
	m := make(map[string]Skill, len(skills))
	for _, s := range skills {
		if _, dup := m[s.Name]; dup {
			panic(fmt.Sprintf("catalog: duplicate skill %q", s.Name))
		}
		m[s.Name] = s
	}
	return m
}()

// Skills returns every skill in catalog order.
func Skills() []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	return out
}

// Names returns every skill name in catalog order.
func Names() []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a skill by name.
func Lookup(name string) (Skill, bool) {
	s, ok := byName[name]
	return s, ok
}

// ByGroup returns the skills of one group in catalog order.
func ByGroup(g Group) []Skill {
	var out []Skill
	for _, s := range skills {
		if s.Group == g {
			out = append(out, s)
		}
	}
	return out
}

// TotalBytes sums the size estimates of the named skills. Unknown names count as zero.
func TotalBytes(names []string) int {
	total := 0
	for _, n := range names {
		if s, ok := byName[n]; ok {
			total += s.Bytes
		}
	}
	return total
}
