package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/ctrlstyle"
	"github.com/yacobolo/ctrlstyle/internal/logger"
	"github.com/yacobolo/ctrlstyle/internal/report"
)

const envPrefix = "CTRLSTYLE_"

var (
	k   = koanf.New(".")
	log = logger.Nop()
)

// configSections are the nested blocks of .ctrlstyle.yaml. Environment
// variables name a section with their first segment.
var configSections = []string{"load", "composer", "compose", "validate", "matrix", "generate"}

// listKeys hold comma-separated lists when set from the environment.
var listKeys = map[string]bool{
	"load.sources":  true,
	"load.exclude":  true,
	"compose.state": true,
}

// prepare loads configuration and builds the logger. Commands call it from PreRunE.
func prepare(cmd *cobra.Command) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	l, err := buildLogger()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".ctrlstyle.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}
	return loadFlags(cmd.Flags())
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CTRLSTYLE_* prefix)
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(name, value string) (string, interface{}) {
		key := envKey(name)
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// loadFlags merges only the flags set on the command line, so unset flag
// defaults never shadow file or environment values.
func loadFlags(fs *pflag.FlagSet) error {
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// envKey maps an environment variable to a config key:
//
//	CTRLSTYLE_COMPOSER_SCALE_FACTOR -> composer.scale-factor
//	CTRLSTYLE_VALIDATE_STRICT       -> validate.strict
//	CTRLSTYLE_LOG_LEVEL             -> log-level
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// buildLogger constructs the command logger from koanf state.
func buildLogger() (*logger.Logger, error) {
	level := getStringWithFallback("log-level", "log-level", "warn")
	if getBoolWithFallback("verbose", "verbose", false) {
		level = "debug"
	}
	l, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		NoColor:       !useColors(),
		Writer:        os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return l, nil
}

// buildComposerConfig constructs the library's Config struct from koanf state.
func buildComposerConfig() ctrlstyle.Config {
	def := ctrlstyle.DefaultConfig()
	return ctrlstyle.Config{
		ScaleFactor:     getFloat64WithFallback("scale-factor", "composer.scale-factor", def.ScaleFactor),
		DisabledOpacity: getFloat64WithFallback("disabled-opacity", "composer.disabled-opacity", def.DisabledOpacity),
	}
}

// buildLoadConfig constructs the token loader config; nil Sources means the
// embedded tokens.
func buildLoadConfig() ctrlstyle.LoadConfig {
	return ctrlstyle.LoadConfig{
		Sources: getStringsWithFallback("tokens", "load.sources", nil),
		Exclude: getStringsWithFallback("exclude", "load.exclude", nil),
		BaseDir: getStringWithFallback("base-dir", "load.base-dir", ""),
	}
}

// buildAuditConfig constructs the audit thresholds from koanf state.
func buildAuditConfig(source string) ctrlstyle.AuditConfig {
	return ctrlstyle.AuditConfig{
		Source:             source,
		MinContrast:        getFloat64WithFallback("min-contrast", "validate.min-contrast", ctrlstyle.DefaultMinContrast),
		MinGraphicContrast: getFloat64WithFallback("min-graphic-contrast", "validate.min-graphic-contrast", ctrlstyle.DefaultMinGraphicContrast),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "validate.max-same-issues", 0),
	}
}

func useColors() bool {
	return report.ShouldUseColors(getBoolWithFallback("color", "color", false))
}

func quiet() bool {
	return getBoolWithFallback("quiet", "quiet", false)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
