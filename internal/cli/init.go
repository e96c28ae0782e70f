package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/claudecraft/create-claudecraft/internal/catalog"
	"github.com/claudecraft/create-claudecraft/internal/scaffold"
	"github.com/claudecraft/create-claudecraft/internal/wizard"
)

// errNoProject is returned by --init outside a JavaScript project.
var errNoProject = errors.New("no package.json in the current directory")

// runInit merges the .claude/ assets into the project at workDir.
func runInit(ctx context.Context, out, errOut io.Writer, workDir string, opts options) error {
	if !scaffold.HasPackageJSON(workDir) {
		return errNoProject
	}

	existing, err := scaffold.HasClaudeDir(workDir)
	if err != nil {
		return err
	}

	if existing {
		fmt.Fprintln(errOut, "  ! .claude/ exists - will merge, not overwrite")
	}

	var choices scaffold.InitChoices
	if opts.yes {
		choices = scaffold.DefaultInitChoices()
		fmt.Fprintf(out, "  Using defaults: all %d skills\n\n", len(catalog.Skills()))
	} else {
		c, err := wizard.RunInit()
		if errors.Is(err, wizard.ErrCanceled) {
			fmt.Fprintln(errOut, cancelMessage)
			return nil
		}
		if err != nil {
			return err
		}
		choices = *c
	}

	e, err := newEngine(opts)
	if err != nil {
		return err
	}

	p := newProgressPrinter(errOut, opts.verbose)
	res, err := e.InitExisting(ctx, workDir, choices, p.Func())
	if err != nil {
		return err
	}

	printInitSummary(out, res)
	return nil
}
