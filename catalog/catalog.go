// Package catalog holds the error descriptions the emulator writes into
// synthesized exception elements. A catalog starts from built-in defaults and
// can be overridden from a YAML or TOML file.
package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	bemu "github.com/reoring/bemu"
	"github.com/reoring/bemu/i18n"
)

// ErrorInfo describes a reference or historical data error
// (fieldExceptions/errorInfo and securityError).
type ErrorInfo struct {
	Source      string `yaml:"source" toml:"source"`
	Code        int32  `yaml:"code" toml:"code"`
	Category    string `yaml:"category" toml:"category"`
	Message     string `yaml:"message" toml:"message"`
	Subcategory string `yaml:"subcategory" toml:"subcategory"`
}

// Reason describes a market data subscription error (exceptions/reason).
type Reason struct {
	Source      string `yaml:"source" toml:"source"`
	ErrorCode   int32  `yaml:"error_code" toml:"error_code"`
	Category    string `yaml:"category" toml:"category"`
	Description string `yaml:"description" toml:"description"`
}

// Catalog groups every error description used by the synthesizers.
type Catalog struct {
	FieldError    ErrorInfo `yaml:"field_error" toml:"field_error"`
	SecurityError ErrorInfo `yaml:"security_error" toml:"security_error"`
	MarketField   Reason    `yaml:"market_field" toml:"market_field"`
	// InvalidPrefix marks field and security names the emulator treats as
	// unknown. Empty disables the check.
	InvalidPrefix string `yaml:"invalid_prefix" toml:"invalid_prefix"`
}

// Format selects the file syntax for Parse.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		FieldError: ErrorInfo{
			Source:      "3920::bbdbd11",
			Code:        9,
			Category:    "BAD_FLD",
			Message:     "Field not valid",
			Subcategory: "INVALID_FIELD",
		},
		SecurityError: ErrorInfo{
			Source:      "100::bbdbs1",
			Code:        15,
			Category:    "BAD_SEC",
			Message:     "Unknown/Invalid security",
			Subcategory: "INVALID_SECURITY",
		},
		MarketField: Reason{
			Source:      "exrsvc2-ny",
			ErrorCode:   2,
			Category:    "BAD_FIELD",
			Description: "Unknown Field",
		},
		InvalidPrefix: "Z",
	}
}

// IsInvalid reports whether the emulator treats name as an unknown field or
// security.
func (c Catalog) IsInvalid(name string) bool {
	return c.InvalidPrefix != "" && strings.HasPrefix(name, c.InvalidPrefix)
}

// Partition splits names into known and unknown ones, keeping their order.
func (c Catalog) Partition(names []string) (valid, invalid []string) {
	for _, n := range names {
		if c.IsInvalid(n) {
			invalid = append(invalid, n)
			continue
		}
		valid = append(valid, n)
	}
	return valid, invalid
}

// FormatFor picks the format from a file extension (.yaml, .yml, .toml).
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("catalog: unsupported file extension %q", filepath.Ext(path))
}

// Load reads a catalog file. Keys absent from the file keep their defaults.
func Load(path string) (Catalog, error) {
	f, err := FormatFor(path)
	if err != nil {
		return Catalog{}, err
	}
	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	return Parse(data, f)
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte, f Format) (Catalog, error) {
	c := Default()
	switch f {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&c)
		if err != nil {
			return Catalog{}, fmt.Errorf("catalog: failed to parse toml: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			return Catalog{}, fmt.Errorf("catalog: unknown toml keys: %s", strings.Join(names, ", "))
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return Catalog{}, fmt.Errorf("catalog: failed to parse yaml: %w", err)
		}
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate reports every empty source or category as an invalid_value issue.
func (c Catalog) Validate() error {
	var iss bemu.Issues
	check := func(p bemu.PathRef, v string) {
		if strings.TrimSpace(v) == "" {
			iss = bemu.AppendIssues(iss, p.Issue(bemu.CodeInvalidValue, i18n.T(bemu.CodeInvalidValue, nil)))
		}
	}
	root := bemu.RootPath()
	check(root.Field("field_error").Field("source"), c.FieldError.Source)
	check(root.Field("field_error").Field("category"), c.FieldError.Category)
	check(root.Field("security_error").Field("source"), c.SecurityError.Source)
	check(root.Field("security_error").Field("category"), c.SecurityError.Category)
	check(root.Field("market_field").Field("source"), c.MarketField.Source)
	check(root.Field("market_field").Field("category"), c.MarketField.Category)
	if len(iss) > 0 {
		return iss
	}
	return nil
}
