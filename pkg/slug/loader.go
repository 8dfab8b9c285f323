package slug

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Charmap is the on-disk form of registry extensions.
//
//	chars:
//	  "©": copyright
//	locales:
//	  de:
//	    "&": und
type Charmap struct {
	Chars   map[string]string            `json:"chars" yaml:"chars" toml:"chars"`
	Locales map[string]map[string]string `json:"locales" yaml:"locales" toml:"locales"`
}

// Apply merges c into the registry: Chars through Extend, each locale
// through ExtendLocale.
func (r *Registry) Apply(c Charmap) {
	if len(c.Chars) > 0 {
		r.Extend(c.Chars)
	}
	for code, table := range c.Locales {
		r.ExtendLocale(code, table)
	}
}

// ParseCharmap decodes data in the given format: "yaml", "yml", "toml" or "json".
// A leading dot is accepted, so path.Ext output can be passed directly.
func ParseCharmap(data []byte, format string) (Charmap, error) {
	var (
		c   Charmap
		err error
	)

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &c)
	case "toml":
		err = toml.Unmarshal(data, &c)
	case "json":
		err = json.Unmarshal(data, &c)
	default:
		return Charmap{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Charmap{}, fmt.Errorf("%w: %s", ErrInvalidCharmap, err)
	}
	return c, nil
}

// LoadCharmapFile reads and decodes a single charmap file.
// The format is taken from the file extension.
func LoadCharmapFile(name string) (Charmap, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Charmap{}, fmt.Errorf("reading %q: %w", name, err)
	}
	c, err := ParseCharmap(data, filepath.Ext(name))
	if err != nil {
		return Charmap{}, fmt.Errorf("%q: %w", name, err)
	}
	return c, nil
}

// LoadCharmapFS walks fsys and merges every .yaml, .yml, .toml and .json file
// into one Charmap. Files are visited in lexical order, later files win.
// Other files are ignored.
func LoadCharmapFS(fsys fs.FS) (Charmap, error) {
	out := Charmap{
		Chars:   make(map[string]string),
		Locales: make(map[string]map[string]string),
	}

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		switch ext {
		case ".yaml", ".yml", ".toml", ".json":
		default:
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		c, err := ParseCharmap(data, ext)
		if err != nil {
			return fmt.Errorf("%q: %w", filePath, err)
		}
		out.merge(c)
		return nil
	})
	if err != nil {
		return Charmap{}, err
	}
	return out, nil
}

func (c *Charmap) merge(src Charmap) {
	maps.Copy(c.Chars, src.Chars)
	for code, table := range src.Locales {
		dst, ok := c.Locales[code]
		if !ok {
			dst = make(map[string]string, len(table))
			c.Locales[code] = dst
		}
		maps.Copy(dst, table)
	}
}
