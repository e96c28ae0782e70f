// Package config manages user-level settings stored at ~/.claudecraft/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template store override and the dependency install command.
package config
