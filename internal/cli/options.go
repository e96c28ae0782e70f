package cli

import (
	"errors"

	"github.com/claudecraft/create-claudecraft/internal/branding"
	"github.com/claudecraft/create-claudecraft/internal/config"
	"github.com/claudecraft/create-claudecraft/internal/runner"
	"github.com/claudecraft/create-claudecraft/internal/scaffold"
	"github.com/claudecraft/create-claudecraft/internal/templates"
)

// options is everything the root command needs once flags and config are read.
type options struct {
	name         string
	yes          bool
	initMode     bool
	noGit        bool
	noInstall    bool
	verbose      bool
	templatesDir string

	// From config.
	installCommand string
	commitMessage  string
	git            bool
}

// withConfig fills the config-backed fields. Flags win over config.
func (o options) withConfig() options {
	if o.templatesDir == "" {
		o.templatesDir = config.Get(config.KeyTemplatesDir)
	}
	o.installCommand = config.Get(config.KeyInstallCommand)
	o.commitMessage = config.Get(config.KeyCommitMessage)
	o.git = config.GetBool(config.KeyGit)
	return o
}

// openStore returns the on-disk store at dir, or the embedded one when dir
// is empty. An on-disk store must accept this CLI version.
func openStore(dir string) (*templates.Store, error) {
	if dir == "" {
		return templates.Embedded(), nil
	}
	store, err := templates.FromDir(dir)
	if err != nil {
		return nil, err
	}
	if err := checkStoreVersion(store); err != nil {
		return nil, err
	}
	return store, nil
}

// checkStoreVersion passes stores without a manifest.
func checkStoreVersion(store *templates.Store) error {
	m, err := store.Manifest()
	if errors.Is(err, templates.ErrNoManifest) {
		return nil
	}
	if err != nil {
		return err
	}
	return m.CheckCompatible(buildVersion)
}

func newEngine(opts options) (*scaffold.Engine, error) {
	store, err := openStore(opts.templatesDir)
	if err != nil {
		return nil, err
	}

	installCommand := opts.installCommand
	if installCommand == "" {
		installCommand = config.DefaultInstallCommand
	}
	commitMessage := opts.commitMessage
	if commitMessage == "" {
		commitMessage = branding.CommitMessage()
	}

	e := scaffold.New(store, runner.New(installCommand), commitMessage)
	e.InstallLabel = installCommand
	return e, nil
}
