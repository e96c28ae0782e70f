// Package catalog is the read-only table of skills, bundles and slash
// commands that ship with claudecraft. It is defined once at compile time and
// never mutated; callers receive copies.
package catalog
