package provision

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/habiliai/agentprovisioner/errors"
)

const OutputFileName = "agent_response.json"

// DefaultOutputPath is OutputFileName in the directory of the running executable.
// Executables under the temp directory, as built by `go run`, write to the working
// directory instead.
func DefaultOutputPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrapf(err, "failed to locate executable")
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrapf(err, "failed to get working directory")
	}
	return outputPathFor(exe, os.TempDir(), wd), nil
}

func outputPathFor(exe string, tempDir string, wd string) string {
	dir := filepath.Dir(exe)
	if isWithin(dir, tempDir) {
		dir = wd
	}
	return filepath.Join(dir, OutputFileName)
}

func isWithin(path string, root string) bool {
	if root == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func writeResponse(path string, body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return errors.Wrapf(err, "failed to format response")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write response to %s", path)
	}
	return nil
}
