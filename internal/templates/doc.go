// Package templates is the read-only template store the scaffold engine copies
// from. A Store wraps an fs.FS: by default the tree embedded under files/, or
// an on-disk directory configured with templates_dir. Callers only ask whether
// a path exists and copy trees or single files out of it; missing sources are
// reported as "not copied", never as errors.
package templates
