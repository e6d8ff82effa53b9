package mpsent

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables read by LoadConfig, e.g.
// MPSENT_LEXICON_DIR or MPSENT_TOKENIZER_MAX_NGRAM.
const EnvPrefix = "MPSENT"

// Config describes how to build and use a dictionary.
type Config struct {
	LexiconDir string          `mapstructure:"lexicon_dir" yaml:"lexicon_dir"` // Holds mpko/*.csv
	Kind       Kind            `mapstructure:"kind" yaml:"kind"`
	Mode       string          `mapstructure:"mode" yaml:"mode"` // "count" or "polarity"
	Tokenizer  TokenizerConfig `mapstructure:"tokenizer" yaml:"tokenizer"`
}

// DefaultConfig returns standard configuration
func DefaultConfig() Config {
	return Config{
		LexiconDir: "lexicon",
		Kind:       KindMarket,
		Mode:       ByCount.String(),
		Tokenizer:  DefaultTokenizerConfig(),
	}
}

// LoadConfig reads configuration from a YAML file, if path is not empty,
// and from MPSENT_* environment variables. Environment variables take
// precedence over the file, and the file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("lexicon_dir", def.LexiconDir)
	v.SetDefault("kind", int(def.Kind))
	v.SetDefault("mode", def.Mode)
	v.SetDefault("tokenizer.max_ngram", def.Tokenizer.MaxNGram)
	v.SetDefault("tokenizer.separator", def.Tokenizer.Separator)
	v.SetDefault("tokenizer.segment", def.Tokenizer.Segment)
	v.SetDefault("tokenizer.stopwords", string(def.Tokenizer.Stopwords))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if _, err := cfg.ScoreMode(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ScoreMode parses cfg.Mode.
func (cfg Config) ScoreMode() (ScoreMode, error) {
	return ParseScoreMode(cfg.Mode)
}

// Write encodes cfg as YAML.
func (cfg Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	return enc.Close()
}
