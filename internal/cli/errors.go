package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/claudecraft/create-claudecraft/internal/branding"
	"github.com/claudecraft/create-claudecraft/internal/scaffold"
)

// errorView is the user-facing rendering of a failure.
type errorView struct {
	Title string
	Body  string
}

func describeError(err error) errorView {
	var se *scaffold.Error
	if errors.As(err, &se) {
		switch se.Kind {
		case scaffold.KindDirectoryExists:
			return errorView{
				Title: fmt.Sprintf("%q already exists", se.Name),
				Body: `Your options:
  1. Pick a different name (creativity exercise)
  2. Delete the old one (commitment issues)
  3. Use --init to add skills to it (pragmatism)`,
			}
		case scaffold.KindInstallFailed:
			body := `Either your wifi or npm. Probably npm.

Check your connection and retry. If npm is down,
join the mass hallucination at status.npmjs.org.`
			if se.Err != nil {
				body += "\n\n" + se.Err.Error()
			}
			return errorView{Title: "Network gave up", Body: body}
		}
	}

	if errors.Is(err, errNoProject) {
		return errorView{
			Title: "Nothing here",
			Body: `--init needs an existing project. This directory has
no package.json. No hope.

Create something first:
  ` + branding.CLIName() + ` my-app`,
		}
	}

	return errorView{Title: "Unexpected error", Body: err.Error()}
}

func renderError(w io.Writer, err error) {
	v := describeError(err)
	fmt.Fprintf(w, "\n  x %s\n\n", v.Title)
	for _, line := range strings.Split(v.Body, "\n") {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
}
