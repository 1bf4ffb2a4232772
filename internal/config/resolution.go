package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Value sources, recorded per setting for --debug style diagnostics.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceCLI     = "cli"
)

// CliFlags holds command-line values. The *Set fields record whether a flag
// was given explicitly.
type CliFlags struct {
	ConfigPath     string
	Timeout        time.Duration
	LatencyTimeout time.Duration
	Format         string
	Style          string
	NoColor        bool
	LogFile        string
	LogLevel       string

	TimeoutSet        bool
	LatencyTimeoutSet bool
	FormatSet         bool
	StyleSet          bool
	NoColorSet        bool
	LogFileSet        bool
	LogLevelSet       bool
}

// ResolvedConfig is the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Timeout        time.Duration
	LatencyTimeout time.Duration
	Format         string
	Style          string
	NoColor        bool
	LogFile        string
	LogLevel       string

	// ConfigFile is the file that was read, if any.
	ConfigFile string
	// Sources maps a setting name to where its value came from.
	Sources map[string]string
}

// Resolve merges defaults, the config file, the environment and flags.
func Resolve(flags CliFlags) (*ResolvedConfig, error) {
	file, path, err := LoadFile(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	r := &ResolvedConfig{ConfigFile: path, Sources: map[string]string{}}

	timeout, src := pickString(DefaultTimeout, file.Timeout, "TERMBG_TIMEOUT")
	if r.Timeout, err = resolveDuration("timeout", timeout, flags.Timeout, flags.TimeoutSet); err != nil {
		return nil, err
	}
	r.Sources["timeout"] = cliOr(flags.TimeoutSet, src)

	latency, src := pickString(DefaultLatencyTimeout, file.LatencyTimeout, "TERMBG_LATENCY_TIMEOUT")
	if r.LatencyTimeout, err = resolveDuration("latency_timeout", latency, flags.LatencyTimeout, flags.LatencyTimeoutSet); err != nil {
		return nil, err
	}
	r.Sources["latency_timeout"] = cliOr(flags.LatencyTimeoutSet, src)

	r.Format, src = pickString(DefaultFormat, file.Format, "TERMBG_FORMAT")
	r.Format, r.Sources["format"] = overrideString(r.Format, src, flags.Format, flags.FormatSet)
	if !validFormat(r.Format) {
		return nil, fmt.Errorf("unknown format %q (expected auto, terminal, plain, json)", r.Format)
	}

	r.Style, src = pickString(DefaultStyle, file.Style, "TERMBG_STYLE")
	r.Style, r.Sources["style"] = overrideString(r.Style, src, flags.Style, flags.StyleSet)
	if r.Style != StyleDefault && r.Style != StyleMono {
		return nil, fmt.Errorf("unknown style %q (expected default, mono)", r.Style)
	}

	r.NoColor, r.Sources["no_color"] = resolveNoColor(file, flags)

	r.LogFile, src = pickString("", file.LogFile, "TERMBG_LOG_FILE")
	r.LogFile, r.Sources["log_file"] = overrideString(r.LogFile, src, flags.LogFile, flags.LogFileSet)

	r.LogLevel, src = pickString(DefaultLogLevel, file.LogLevel, "TERMBG_LOG_LEVEL")
	r.LogLevel, r.Sources["log_level"] = overrideString(r.LogLevel, src, flags.LogLevel, flags.LogLevelSet)

	return r, nil
}

// pickString applies default < file < env for a string setting.
func pickString(def, fromFile, envKey string) (string, string) {
	if v := os.Getenv(envKey); v != "" {
		return v, SourceEnv
	}
	if fromFile != "" {
		return fromFile, SourceFile
	}
	return def, SourceDefault
}

func overrideString(v, src, flag string, set bool) (string, string) {
	if set {
		return flag, SourceCLI
	}
	return v, src
}

func cliOr(set bool, src string) string {
	if set {
		return SourceCLI
	}
	return src
}

func resolveDuration(name, raw string, flag time.Duration, flagSet bool) (time.Duration, error) {
	d := flag
	if !flagSet {
		var err error
		d, err = time.ParseDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
		}
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %s: must be positive", name, d)
	}
	return d, nil
}

// resolveNoColor honours TERMBG_NO_COLOR as a boolean and NO_COLOR by
// presence, per no-color.org.
func resolveNoColor(file *FileConfig, flags CliFlags) (bool, string) {
	if flags.NoColorSet {
		return flags.NoColor, SourceCLI
	}
	if v := os.Getenv("TERMBG_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b, SourceEnv
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		return true, SourceEnv
	}
	if file.NoColor != nil {
		return *file.NoColor, SourceFile
	}
	return false, SourceDefault
}

func validFormat(f string) bool {
	switch f {
	case FormatAuto, FormatTerminal, FormatPlain, FormatJSON:
		return true
	}
	return false
}
