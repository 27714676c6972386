package scanprog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	"src.slowscan.dev/pkg/prog"
	"src.slowscan.dev/pkg/scan"
)

// rcConfig is the schema of the optional rc file. It supplies defaults for
// the corresponding flags; explicit flags always win.
type rcConfig struct {
	Delay            string `yaml:"delay"`
	FullWidthDelay   string `yaml:"full-width-delay"`
	ControlCharDelay string `yaml:"control-char-delay"`
	TailDelay        bool   `yaml:"tail-delay"`
	LineMode         bool   `yaml:"line-mode"`
	HideCursor       bool   `yaml:"hide-cursor"`
}

// hostOpts are the resolved options that concern the host rather than the
// writer itself.
type hostOpts struct {
	lineMode   bool
	hideCursor bool
}

// resolveConfig resolves the writer configuration and host options from
// flags, the rc file and builtin defaults, in that order of precedence.
// Problems reading the rc file are reported to stderr and do not fail the
// run; an invalid duration string does.
func resolveConfig(f *prog.Flags, stderr io.Writer) (scan.Config, hostOpts, error) {
	var rc rcConfig
	if !f.NoRC {
		path, err := rcPath(f.RC)
		if err == nil {
			rc, err = readRC(path)
		}
		if err != nil {
			fmt.Fprintln(stderr, "warning:", err)
			rc = rcConfig{}
		}
	}

	base, err := resolveDelay("-delay", f.Delay, rc.Delay, 20*time.Millisecond)
	if err != nil {
		return scan.Config{}, hostOpts{}, err
	}
	fullWidth, err := resolveDelay(
		"-full-width-delay", f.FullWidthDelay, rc.FullWidthDelay, 2*base)
	if err != nil {
		return scan.Config{}, hostOpts{}, err
	}
	control, err := resolveDelay(
		"-control-char-delay", f.ControlCharDelay, rc.ControlCharDelay, 0)
	if err != nil {
		return scan.Config{}, hostOpts{}, err
	}

	cfg := scan.Config{
		BaseDelay:      base,
		FullWidthDelay: fullWidth,
		ControlDelay:   control,
		TailDelay:      f.TailDelay || rc.TailDelay,
	}
	opts := hostOpts{
		lineMode:   f.LineMode || rc.LineMode,
		hideCursor: f.HideCursor || rc.HideCursor,
	}
	return cfg, opts, nil
}

// resolveDelay picks the first non-empty duration string between the flag
// value and the rc value, falling back to fallback when both are empty.
func resolveDelay(name, flagValue, rcValue string, fallback time.Duration) (time.Duration, error) {
	s := flagValue
	if s == "" {
		s = rcValue
	}
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q for %s", s, name)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q for %s", s, name)
	}
	return d, nil
}

// rcPath returns the path of the rc file: the -rc flag if given, then
// $SLOWSCAN_RC, then slowscan/rc.yaml under the OS config directory.
func rcPath(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if env := os.Getenv("SLOWSCAN_RC"); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate rc file: %w", err)
	}
	return filepath.Join(dir, "slowscan", "rc.yaml"), nil
}

// readRC reads and parses the rc file. A missing file is not an error.
func readRC(path string) (rcConfig, error) {
	var rc rcConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rcConfig{}, nil
		}
		return rcConfig{}, fmt.Errorf("cannot read rc file: %w", err)
	}
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return rcConfig{}, fmt.Errorf("cannot parse rc file %s: %w", path, err)
	}
	return rc, nil
}
