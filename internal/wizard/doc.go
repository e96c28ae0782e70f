// Package wizard asks the interactive questions that produce scaffold
// choices. It only prompts; nothing is written to disk here.
package wizard
