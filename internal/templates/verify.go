package templates

import (
	"bytes"
	"fmt"
	"path"

	"github.com/claudecraft/create-claudecraft/internal/catalog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.yaml.in/yaml/v3"
)

// Issue is a problem found while verifying a store.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// SkillDoc is the parsed SKILL.md of one skill.
type SkillDoc struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Title       string `yaml:"-"`
}

var requiredFiles = []string{PackageJSON, ClaudeDoc, AppEntry}

// Verify checks that every catalog skill resolves to a directory with a
// well-formed SKILL.md and that the files the engine relies on are present.
func Verify(s *Store) []Issue {
	var issues []Issue

	for _, f := range requiredFiles {
		if !s.Exists(f) {
			issues = append(issues, Issue{Path: f, Message: "missing"})
		}
	}
	for _, d := range []string{BaseDir, CommandsDir, SettingsDir} {
		if !s.IsDir(d) {
			issues = append(issues, Issue{Path: d + "/", Message: "missing"})
		}
	}

	for _, skill := range catalog.Skills() {
		dir, ok := s.SkillSource(skill.Name)
		if !ok {
			issues = append(issues, Issue{Path: SkillsDir + "/" + string(skill.Group) + "/" + skill.Name, Message: "skill not found in any group"})
			continue
		}
		docPath := path.Join(dir, SkillFile)
		doc, err := s.SkillDoc(dir)
		if err != nil {
			issues = append(issues, Issue{Path: docPath, Message: err.Error()})
			continue
		}
		if doc.Name != "" && doc.Name != skill.Name {
			issues = append(issues, Issue{Path: docPath, Message: fmt.Sprintf("front matter name %q does not match %q", doc.Name, skill.Name)})
		}
		if doc.Title == "" {
			issues = append(issues, Issue{Path: docPath, Message: "no top-level heading"})
		}
	}

	return issues
}

// SkillDoc parses the SKILL.md inside a skill directory.
func (s *Store) SkillDoc(dir string) (*SkillDoc, error) {
	data, err := s.ReadFile(path.Join(dir, SkillFile))
	if err != nil {
		return nil, err
	}

	front, body := splitFrontMatter(data)
	doc := &SkillDoc{}
	if front != nil {
		if err := yaml.Unmarshal(front, doc); err != nil {
			return nil, fmt.Errorf("parsing front matter: %w", err)
		}
	}
	doc.Title = firstHeading(body)
	return doc, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block.
func splitFrontMatter(data []byte) (front, body []byte) {
	delim := []byte("---\n")
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(data, delim) {
		return nil, data
	}
	rest := data[len(delim):]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		return nil, data
	}
	return rest[:end], rest[end+len("\n---\n"):]
}

// firstHeading returns the text of the first level-1 heading.
func firstHeading(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		var buf bytes.Buffer
		for c := h.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Segment.Value(src))
			}
		}
		title = buf.String()
		return ast.WalkStop, nil
	})
	return title
}
