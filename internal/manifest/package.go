package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/buger/jsonparser"
)

// FileName is the manifest file at a project root.
const FileName = "package.json"

// indent is the indentation written back to package.json.
const indent = "  "

// SetName returns data with its top-level "name" replaced (or added), every
// other field kept in its original order, re-indented with two spaces and
// exactly one trailing newline.
func SetName(data []byte, name string) ([]byte, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s is not valid JSON", FileName)
	}
	if t := firstToken(data); t != '{' {
		return nil, fmt.Errorf("%s must contain a JSON object", FileName)
	}

	value, err := json.Marshal(name)
	if err != nil {
		return nil, fmt.Errorf("encoding name: %w", err)
	}

	updated, err := jsonparser.Set(data, value, "name")
	if err != nil {
		return nil, fmt.Errorf("setting name in %s: %w", FileName, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(updated), "", indent); err != nil {
		return nil, fmt.Errorf("formatting %s: %w", FileName, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// RewriteName sets the name field of the package.json at path in place.
func RewriteName(path, name string) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}

	out, err := SetName(data, name)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Name returns the top-level name of a package.json document.
func Name(data []byte) (string, error) {
	name, err := jsonparser.GetString(data, "name")
	if err != nil {
		return "", fmt.Errorf("reading name from %s: %w", FileName, err)
	}
	return name, nil
}

func firstToken(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
