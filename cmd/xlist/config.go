package main

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/xlog"
)

const (
	defaultPrefix    = "XLIST_"
	defaultDelimiter = "."

	configFileFlag = "configfile"
	kindFlag       = "kind"
	scriptFlag     = "script"
	logLevelFlag   = "log.level"
	logFormatFlag  = "log.format"
	logColorFlag   = "log.color"
	logTimeFlag    = "log.time"

	kindSingly = "singly"
	kindDoubly = "doubly"
)

var (
	errUnknownKind     = errors.New("[xlist] unknown list kind")
	errUnknownLogLevel = errors.New("[xlist] unknown log level")
	errUnknownLogTime  = errors.New("[xlist] unknown log time format")
)

var (
	logLevels = []xlog.LogLevel{
		xlog.LogLevelDebug,
		xlog.LogLevelInfo,
		xlog.LogLevelWarn,
		xlog.LogLevelError,
	}
	logTimeEncoders = map[string]zapcore.TimeEncoder{
		"iso8601": zapcore.ISO8601TimeEncoder,
		"rfc3339": zapcore.RFC3339TimeEncoder,
		"epoch":   zapcore.EpochTimeEncoder,
		"millis":  zapcore.EpochMillisTimeEncoder,
	}
)

type Config struct {
	Kind   string    `koanf:"kind"`
	Script string    `koanf:"script"`
	Log    LogConfig `koanf:"log"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// Color only applies to the text format.
	Color bool   `koanf:"color"`
	Time  string `koanf:"time"`
}

func flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("xlist", pflag.ContinueOnError)
	flags.String(configFileFlag, "", "YAML config file, a missing file is ignored (env XLIST_CONFIGFILE)")
	flags.String(kindFlag, kindDoubly, "list implementation, singly or doubly")
	flags.String(scriptFlag, "", "file holding one list operation per line, - reads stdin")
	flags.String(logLevelFlag, "info", "log level: debug, info, warn or error")
	flags.String(logFormatFlag, "text", "log format: json or text")
	flags.Bool(logColorFlag, false, "colored log levels for the text format")
	flags.String(logTimeFlag, "iso8601", "log timestamp: iso8601, rfc3339, epoch or millis")
	return flags
}

// loadConfig layers flag defaults, the config file, XLIST_ environment
// variables and explicitly set flags, the later ones win.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	configMap := koanf.New(defaultDelimiter)
	if err := configMap.Load(posflag.Provider(flags, defaultDelimiter, configMap), nil); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "unable to load flag defaults")
	}

	e := env.ProviderWithValue(defaultPrefix, defaultDelimiter, func(rawKey string, rawValue string) (string, interface{}) {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(rawKey, defaultPrefix)), "_", defaultDelimiter)
		return key, strings.TrimSpace(rawValue)
	})
	envMap := koanf.New(defaultDelimiter)
	// errors can't occur for this provider
	_ = envMap.Load(e, nil)

	// The file location itself follows flag > env > default.
	path := configMap.String(configFileFlag)
	if envMap.Exists(configFileFlag) {
		path = envMap.String(configFileFlag)
	}
	if flags.Changed(configFileFlag) {
		path, _ = flags.GetString(configFileFlag)
	}
	if len(path) > 0 {
		if err := configMap.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, infra.WrapErrorStackWithMessage(err, "unable to load config file")
		}
	}

	if err := configMap.Merge(envMap); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "unable to merge environment")
	}

	if err := configMap.Load(posflag.Provider(flags, defaultDelimiter, configMap), nil); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "unable to load flags")
	}

	cfg := &Config{}
	if err := configMap.Unmarshal("", cfg); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "unable to unmarshal config")
	}
	cfg.Kind = strings.ToLower(strings.TrimSpace(cfg.Kind))
	if !lo.Contains([]string{kindSingly, kindDoubly}, cfg.Kind) {
		return nil, infra.WrapErrorStackWithMessage(errUnknownKind, cfg.Kind)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if !lo.Contains(logLevels, xlog.LogLevel(strings.ToUpper(cfg.Log.Level))) {
		return nil, infra.WrapErrorStackWithMessage(errUnknownLogLevel, cfg.Log.Level)
	}
	cfg.Log.Time = strings.ToLower(strings.TrimSpace(cfg.Log.Time))
	if _, ok := logTimeEncoders[cfg.Log.Time]; !ok {
		return nil, infra.WrapErrorStackWithMessage(errUnknownLogTime, cfg.Log.Time)
	}
	return cfg, nil
}
