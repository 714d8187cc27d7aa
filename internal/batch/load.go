package batch

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrNoRequests is returned when an input holds no non-blank requests.
var ErrNoRequests = errors.New("no requests found")

// requestFile is the mapping form of a YAML batch file.
type requestFile struct {
	Requests []string `yaml:"requests"`
}

// LoadFile reads requests from a file. Files ending in .yaml or .yml hold
// either a list of strings or a mapping with a "requests" list; any other
// file holds one request per line, with blank lines and lines starting
// with '#' skipped.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseLines(data)
	}
}

// ParseYAML parses a YAML list of requests or a mapping with a "requests" key.
func ParseYAML(data []byte) ([]string, error) {
	var list []string
	if err := yaml.Unmarshal(data, &list); err != nil {
		var file requestFile
		if err2 := yaml.Unmarshal(data, &file); err2 != nil {
			return nil, fmt.Errorf("parsing batch yaml: %w", err)
		}
		list = file.Requests
	}
	return nonBlank(list)
}

// maxLineSize bounds a single request line.
const maxLineSize = 1 << 20

// ParseLines parses one request per line.
func ParseLines(data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch lines: %w", err)
	}
	return nonBlank(lines)
}

func nonBlank(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoRequests
	}
	return out, nil
}
