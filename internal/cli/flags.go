package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/ggview/engine"
)

// Flag names.
const (
	flagDebug       = "debug"
	flagAPI         = "api"
	flagSamples     = "samples"
	flagWindow      = "window"
	flagFullscreen  = "fullscreen"
	flagEventDriven = "event-driven"
	flagInterval    = "interval"
	flagHeadless    = "headless"
	flagFrames      = "frames"
	flagBackend     = "backend"
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagOutput      = "output"
)

// flagAliases maps the short long-form spellings onto their flags.
var flagAliases = map[string]string{
	"fs": flagFullscreen,
	"ed": flagEventDriven,
}

// settings is the resolved command configuration.
type settings struct {
	Debug       bool
	APIDump     bool
	Samples     int
	Width       int
	Height      int
	Fullscreen  bool
	EventDriven bool
	Interval    int
	Headless    bool
	Frames      uint64
	Backend     string
	LogLevel    slog.Level
	Output      string
}

func defineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolP(flagDebug, "d", false, "enable the validation and debug layers")
	f.BoolP(flagAPI, "a", false, "log every backend call")
	f.Int(flagSamples, 1, "multisample count")
	f.IntSliceP(flagWindow, "w", []int{engine.DefaultWidth, engine.DefaultHeight}, "initial window `width height`")
	f.Bool(flagFullscreen, false, "start fullscreen (alias --fs)")
	f.Bool(flagEventDriven, false, "render only when events arrive (alias --ed)")
	f.Int(flagInterval, int(engine.DefaultInterval.Milliseconds()), "minimum milliseconds between frames, ignored if negative")
	f.Bool(flagHeadless, false, "render offscreen without opening a window")
	f.Uint64(flagFrames, 0, "stop after this many frames (0 runs until closed)")
	f.String(flagBackend, "", "rendering backend (default: best available)")
	f.String(flagConfig, "", "YAML config `file`")
	f.String(flagLogLevel, "warn", "log level: debug, info, warn or error")
	f.String(flagOutput, "", "write the last frame of the first view to this PNG `file`")
	cmd.SetGlobalNormalizationFunc(normalizeFlag)
}

func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if full, ok := flagAliases[name]; ok {
		name = full
	}
	return pflag.NormalizedName(name)
}

// joinWindowArgs rewrites "--window W H" and "-w W H" into "--window W,H"
// so the size parses as one slice value. Arguments after "--" are left
// alone.
func joinWindowArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return append(out, args[i:]...)
		}
		if (a == "--"+flagWindow || a == "-w") && i+2 < len(args) && isInt(args[i+1]) && isInt(args[i+2]) {
			out = append(out, "--"+flagWindow, args[i+1]+","+args[i+2])
			i += 2
			continue
		}
		out = append(out, a)
	}
	return out
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// loadSettings resolves the flags against GGVIEW_ environment variables
// and the optional config file. Flags set on the command line win.
func loadSettings(flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix("GGVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return settings{}, fmt.Errorf("bind flags: %w", err)
	}

	if file := v.GetString(flagConfig); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	width, height, err := windowSize(v.Get(flagWindow))
	if err != nil {
		return settings{}, err
	}
	level, err := parseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return settings{}, err
	}
	samples := v.GetInt(flagSamples)
	if samples < 0 {
		return settings{}, fmt.Errorf("invalid --%s %d", flagSamples, samples)
	}

	return settings{
		Debug:       v.GetBool(flagDebug),
		APIDump:     v.GetBool(flagAPI),
		Samples:     samples,
		Width:       width,
		Height:      height,
		Fullscreen:  v.GetBool(flagFullscreen),
		EventDriven: v.GetBool(flagEventDriven),
		Interval:    v.GetInt(flagInterval),
		Headless:    v.GetBool(flagHeadless),
		Frames:      v.GetUint64(flagFrames),
		Backend:     v.GetString(flagBackend),
		LogLevel:    level,
		Output:      v.GetString(flagOutput),
	}, nil
}

// windowSize accepts the forms the window size arrives in: an int slice
// from the flag, a "W,H" or "W H" string from the environment, or a YAML
// list from the config file.
func windowSize(raw any) (width, height int, err error) {
	var parts []int
	switch v := raw.(type) {
	case []int:
		parts = v
	case string:
		fields := strings.FieldsFunc(strings.Trim(v, "[]"), func(r rune) bool { return r == ',' || r == ' ' || r == 'x' })
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid --%s %q", flagWindow, v)
			}
			parts = append(parts, n)
		}
	case []any:
		for _, e := range v {
			n, ok := e.(int)
			if !ok {
				return 0, 0, fmt.Errorf("invalid --%s %v", flagWindow, v)
			}
			parts = append(parts, n)
		}
	default:
		return 0, 0, fmt.Errorf("invalid --%s %v", flagWindow, raw)
	}
	if len(parts) != 2 || parts[0] <= 0 || parts[1] <= 0 {
		return 0, 0, fmt.Errorf("invalid --%s %v: want a positive width and height", flagWindow, parts)
	}
	return parts[0], parts[1], nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid --%s %q", flagLogLevel, s)
	}
	return level, nil
}
