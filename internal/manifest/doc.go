// Package manifest reads, rewrites and validates the package.json manifest of
// a generated project. Rewrites change only the fields asked for and keep key
// order; validation runs against the JSON Schema embedded under schema/.
package manifest
