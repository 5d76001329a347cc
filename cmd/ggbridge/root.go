package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/ggbridge"
	"github.com/gogpu/ggbridge/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"width":         "width",
	"height":        "height",
	"frames":        "frames",
	"interval":      "frame_interval",
	"backend":       "backend",
	"out":           "output.dir",
	"font":          "text.font",
	"text-size":     "text.size",
	"shaper":        "text.shaper",
	"background":    "canvas.background",
	"camera-policy": "camera.policy",
	"inspect":       "inspect.addr",
}

// app holds state shared by the subcommands.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	level   slog.LevelVar
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ggbridge",
		Short: "Drive a scene engine through the two-pass draw bridge",
		Long: `ggbridge decodes the command streams of a scene engine, measures text
for the engine, and paints the resulting frames with gg.

Configuration is read from defaults, .ggbridge.yaml (or --config),
GGBRIDGE_* environment variables and flags, in increasing priority.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is .ggbridge.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newRenderCmd(a), newReplayCmd(a), newVersionCmd())
	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v = config.New(a.cfgFile)
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	if err := config.ReadFile(a.v); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.LogLevel()
	a.level.Set(lvl)
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: &a.level}))
	ggbridge.SetLogger(a.log)
	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.Debug("using config file", "path", f)
	}
	return nil
}

// bindFlags binds every known flag present in fs to its config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

// explicit reports whether the config key behind flag was set by the flag,
// the config file or the environment rather than by a default.
func explicit(a *app, cmd *cobra.Command, flag string) bool {
	if cmd.Flags().Changed(flag) {
		return true
	}
	key := flagKeys[flag]
	if a.v.InConfig(key) {
		return true
	}
	_, ok := os.LookupEnv(config.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	return ok
}

// addFrameFlags registers the flags shared by render and replay.
func addFrameFlags(fs *pflag.FlagSet) {
	fs.Int("width", 640, "surface width in pixels")
	fs.Int("height", 480, "surface height in pixels")
	fs.Int("frames", 1, "number of frames to paint, 0 runs until interrupted (replay defaults to the whole script)")
	fs.Duration("interval", ggbridge.DefaultFrameInterval, "repaint interval in realtime mode")
	fs.String("backend", "gg", "surface backend (gg, recording)")
	fs.StringP("out", "o", ".", "directory for frame PNGs")
	fs.String("font", "", "TTF font file (default embedded Go Regular)")
	fs.Float64("text-size", 12, "UI font size")
	fs.String("shaper", "ximage", "text measurer (ximage, gotext)")
	fs.String("background", "#ffffff", "background color")
	fs.String("camera-policy", "clamp", "out-of-range camera indices (clamp, reject)")
	fs.String("inspect", "", "serve frame stats on this address (e.g. :8089)")
	fs.Bool("realtime", false, "paint at the frame interval instead of as fast as possible")
}
