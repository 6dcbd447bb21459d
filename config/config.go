package config

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pontaoski/pyproto/lexer"
	"github.com/pontaoski/pyproto/parser"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const DefaultFile = "pyproto.yaml"

const (
	FormatSExpr = "sexpr"
	FormatRepr  = "repr"
)

type Config struct {
	Lookahead     int    `yaml:"Lookahead" toml:"lookahead"`
	GreedyStrings bool   `yaml:"GreedyStrings" toml:"greedy_strings"`
	Format        string `yaml:"Format" toml:"format"`
}

func Default() Config {
	return Config{
		Lookahead: parser.DefaultLookahead,
		Format:    FormatSExpr,
	}
}

func (c Config) Validate() error {
	if c.Lookahead < parser.DefaultLookahead {
		return fmt.Errorf("lookahead must be at least %d, got %d", parser.DefaultLookahead, c.Lookahead)
	}
	switch c.Format {
	case FormatSExpr, FormatRepr:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}

// ParserOptions turns the settings into options for parser.Parse.
func (c Config) ParserOptions() []parser.Option {
	opts := []parser.Option{parser.WithLookahead(c.Lookahead)}
	if c.GreedyStrings {
		opts = append(opts, parser.WithLexerOptions(lexer.GreedyStrings()))
	}
	return opts
}

// Load reads a YAML or TOML file, chosen by extension, over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, tracerr.Wrap(err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return cfg, tracerr.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return cfg, tracerr.Wrap(fmt.Errorf("reading %s: %w", path, err))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, tracerr.Wrap(fmt.Errorf("%s: %w", path, err))
	}

	return cfg, nil
}

// Write stores cfg as YAML.
func Write(path string, cfg Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return tracerr.Wrap(err)
	}

	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}
