package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/logger"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a profile file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported profile format")
	ErrProfileNotFound   = errors.New("profile not found")
)

// searchExtensions is the lookup order used by Find.
var searchExtensions = []string{".toml", ".yaml", ".yml", ".json"}

// LoadError records a profile file that could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e LoadError) Unwrap() error {
	return e.Err
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads and parses the profile at path.
func Load(path string) (*Profile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	p.Source = path

	logger.NewLogger("profile").WithField("path", path).WithField("bindings", len(p.Keybindings)).Debug("Loaded profile")
	return p, nil
}

// Parse decodes a profile in the given format.
func Parse(data []byte, format Format) (*Profile, error) {
	var p Profile
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &p)
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	case FormatJSON:
		err = json.Unmarshal(data, &p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if p.FormatVersion == "" {
		p.FormatVersion = CurrentFormatVersion
	}
	return &p, nil
}

// Marshal encodes a profile in the given format.
func Marshal(p *Profile, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(p)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(p, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Discover returns every profile file under dir, sorted. Hidden directories
// are skipped.
func Discover(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if _, err := FormatFromPath(path); err == nil {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadAll loads every path. Files that fail to load are reported in the
// returned errors and do not stop the others.
func LoadAll(paths []string) ([]*Profile, []LoadError) {
	log := logger.NewLogger("profile")

	var profiles []*Profile
	var failures []LoadError
	for _, path := range paths {
		p, err := Load(path)
		if err != nil {
			log.WithField("path", path).WithError(err).Warn("Skipping profile")
			failures = append(failures, LoadError{Path: path, Err: err})
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, failures
}

// Find resolves a profile reference. A reference with an extension or a
// path separator is used as a path (relative ones are also tried under dir);
// a bare name is looked up in dir with each supported extension.
func Find(dir, ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", ErrProfileNotFound)
	}

	if filepath.Ext(ref) != "" || strings.ContainsRune(ref, filepath.Separator) {
		if fileExists(ref) {
			return ref, nil
		}
		if dir != "" && !filepath.IsAbs(ref) {
			if candidate := filepath.Join(dir, ref); fileExists(candidate) {
				return candidate, nil
			}
		}
		return "", fmt.Errorf("%w: %s", ErrProfileNotFound, ref)
	}

	if dir != "" {
		for _, ext := range searchExtensions {
			if candidate := filepath.Join(dir, ref+ext); fileExists(candidate) {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrProfileNotFound, ref)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
