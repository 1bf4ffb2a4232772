// Package config resolves termbg settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--timeout, --latency-timeout, --format, --style, --no-color, --log-file, --log-level)
//  2. Environment variables (TERMBG_TIMEOUT, TERMBG_LATENCY_TIMEOUT, TERMBG_FORMAT,
//     TERMBG_STYLE, TERMBG_NO_COLOR or NO_COLOR, TERMBG_LOG_FILE, TERMBG_LOG_LEVEL)
//  3. YAML config file (--config, else .termbg.yaml in the working directory,
//     else <user config dir>/termbg/.termbg.yaml)
//  4. Hardcoded defaults
//
// # Config File
//
//	timeout: 100ms
//	latency_timeout: 1s
//	format: auto        # auto, terminal, plain, json
//	style: default      # default, mono
//	no_color: false
//	log_file: /tmp/termbg.log
//	log_level: debug    # debug, info, warn, error
//
// Durations use Go syntax ("150ms", "2s").
package config
