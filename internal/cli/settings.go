package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/bjaus/pretty"
)

const (
	envPrefix         = "PRETTYDUMP_"
	defaultConfigFile = "prettydump/config.yaml"
)

// Settings is the merged configuration of one prettydump run.
type Settings struct {
	Indent               string `koanf:"indent"`
	PreItemSpacing       string `koanf:"pre_item_spacing"`
	PostItemSpacing      string `koanf:"post_item_spacing"`
	PreSeparatorSpacing  string `koanf:"pre_separator_spacing"`
	PostSeparatorSpacing string `koanf:"post_separator_spacing"`
	IntraGroupSpacing    string `koanf:"intra_group_spacing"`
	MaxWidth             int    `koanf:"max_width"`
	Format               string `koanf:"format"`
	Jobs                 int    `koanf:"jobs"`
}

// spacingKeys are the settings that accept Go escapes such as \t and \n.
var spacingKeys = []string{
	"indent",
	"pre_item_spacing",
	"post_item_spacing",
	"pre_separator_spacing",
	"post_separator_spacing",
	"intra_group_spacing",
}

func defaults() map[string]any {
	cfg := pretty.DefaultConfig()
	return map[string]any{
		"indent":                 cfg.Indent,
		"pre_item_spacing":       cfg.PreItemSpacing,
		"post_item_spacing":      cfg.PostItemSpacing,
		"pre_separator_spacing":  cfg.PreSeparatorSpacing,
		"post_separator_spacing": cfg.PostSeparatorSpacing,
		"intra_group_spacing":    cfg.IntraGroupSpacing,
		"max_width":              0,
		"format":                 "",
		"jobs":                   runtime.NumCPU(),
	}
}

// LoadSettings merges, lowest precedence first: built-in defaults, the
// config file, PRETTYDUMP_* environment variables and flags set on the
// command line. An empty path falls back to prettydump/config.yaml in the
// XDG config directories, which may be absent.
func LoadSettings(path string, flags *pflag.FlagSet) (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		if found, err := xdg.SearchConfigFile(defaultConfigFile); err == nil {
			path = found
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return Settings{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	escaped := koanf.New(".")
	err := escaped.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load env vars: %w", err)
	}
	if flags != nil {
		if err := escaped.Load(confmap.Provider(changed(flags), "."), nil); err != nil {
			return Settings{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}
	if err := unescapeAll(escaped); err != nil {
		return Settings{}, err
	}
	if err := k.Merge(escaped); err != nil {
		return Settings{}, fmt.Errorf("failed to merge overrides: %w", err)
	}

	var s Settings
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.Jobs < 1 {
		s.Jobs = 1
	}
	return s, nil
}

// Options turns the settings into renderer options.
func (s Settings) Options() []pretty.Option {
	return []pretty.Option{
		pretty.WithConfig(pretty.Config{
			Indent:               s.Indent,
			PreItemSpacing:       s.PreItemSpacing,
			PostItemSpacing:      s.PostItemSpacing,
			PreSeparatorSpacing:  s.PreSeparatorSpacing,
			PostSeparatorSpacing: s.PostSeparatorSpacing,
			IntraGroupSpacing:    s.IntraGroupSpacing,
		}),
		pretty.WithMaxStringWidth(s.MaxWidth),
	}
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Parser()
	}
	return yaml.Parser()
}

// changed collects the flags given on the command line under their setting
// keys. Flags that are not settings are ignored.
func changed(flags *pflag.FlagSet) map[string]any {
	known := make(map[string]bool)
	for key := range defaults() {
		known[key] = true
	}
	out := make(map[string]any)
	flags.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if known[key] {
			out[key] = f.Value.String()
		}
	})
	return out
}

func unescapeAll(k *koanf.Koanf) error {
	for _, key := range spacingKeys {
		if !k.Exists(key) {
			continue
		}
		s, err := unescape(k.String(key))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		if err := k.Set(key, s); err != nil {
			return err
		}
	}
	return nil
}

var errBadEscape = errors.New("bad escape sequence")

// unescape interprets Go escape sequences in s.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	out, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errBadEscape, s)
	}
	return out, nil
}

// escape is the inverse of unescape, used to show defaults in help text.
func escape(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
