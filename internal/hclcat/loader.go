package hclcat

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/ctxlog"
)

// Loader reads catalog manifest files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads catalog versions from the given paths. A path may be a single
// .hcl file or a directory, in which case every .hcl file in it is loaded
// (one version per file). Versions are returned sorted by name; loading
// does not validate — that is the registry's job at activation.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*catalog.Version, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog path: %w", err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hcl") {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog manifests found under %v", paths)
	}
	sort.Strings(files)

	versions := make([]*catalog.Version, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, file := range files {
		v, err := l.loadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[v.Name]; dup {
			return nil, fmt.Errorf("catalog version %q defined in both %s and %s", v.Name, prev, file)
		}
		seen[v.Name] = file
		versions = append(versions, v)
		logger.Debug("Catalog manifest loaded.", "file", file, "version", v.Name, "variables", v.Len())
	}

	sort.Slice(versions, func(i, j int) bool { return versions[i].Name < versions[j].Name })
	return versions, nil
}

// loadFile parses and translates a single manifest file.
func (l *Loader) loadFile(ctx context.Context, path string) (*catalog.Version, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog manifest: %w", err)
	}

	f, diags := l.parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", path, diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(f.Body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", path, diags)
	}

	return translateFile(ctx, path, &schema)
}
