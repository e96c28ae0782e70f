package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/claudecraft/create-claudecraft/internal/branding"
	"github.com/claudecraft/create-claudecraft/internal/scaffold"
	"github.com/claudecraft/create-claudecraft/internal/wizard"
)

const cancelMessage = "You'll be back. They always come back."

// runCreate scaffolds a new project under workDir.
func runCreate(ctx context.Context, out, errOut io.Writer, workDir string, opts options) error {
	var choices scaffold.Choices
	if opts.yes {
		name := opts.name
		if name == "" {
			name = branding.DefaultProjectName()
		}
		choices = scaffold.DefaultChoices(name)
	} else {
		c, err := wizard.RunNew(workDir, defaultName(opts.name))
		if errors.Is(err, wizard.ErrCanceled) {
			fmt.Fprintln(errOut, cancelMessage)
			return nil
		}
		if err != nil {
			return err
		}
		choices = *c
	}

	if opts.noGit || !opts.git {
		choices.InitVersionControl = false
	}
	choices.SkipInstall = opts.noInstall

	if opts.yes {
		fmt.Fprintf(out, "  Using defaults: %s\n\n", describeDefaults(choices))
	}

	e, err := newEngine(opts)
	if err != nil {
		return err
	}

	p := newProgressPrinter(errOut, opts.verbose)
	res, err := e.Scaffold(ctx, workDir, choices, p.Func())
	if err != nil {
		return err
	}

	printCreateSummary(out, choices.ProjectName, res)
	return nil
}

func defaultName(name string) string {
	if name != "" {
		return name
	}
	return branding.DefaultProjectName()
}

func describeDefaults(c scaffold.Choices) string {
	s := c.ProjectName + ", all skills, homepage"
	if c.InitVersionControl {
		s += ", git init"
	}
	if c.SkipInstall {
		s += ", no install"
	}
	return s
}
