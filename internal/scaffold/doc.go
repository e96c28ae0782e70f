// Package scaffold materializes claudecraft projects from a template store.
//
// Engine.Scaffold creates a new project directory: it copies the base tree,
// the selected skills, commands, hooks and settings into .claude/, the
// application sources into src/, rewrites package.json, then installs
// dependencies and optionally initializes a git repository.
//
// Engine.InitExisting merges the same .claude/ assets into a project that
// already exists. It never touches src/, never installs and never runs git,
// and it leaves existing settings files and CLAUDE.md alone. A full scaffold
// overwrites settings files; the two policies differ on purpose.
//
// Both entry points take the directory they operate on explicitly and report
// progress through a progress.Func. Failures the caller must distinguish are
// *Error values; see Kind.
package scaffold
