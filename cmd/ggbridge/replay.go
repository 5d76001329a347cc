package main

import (
	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/ggbridge/engine/script"
	"github.com/gogpu/ggbridge/internal/config"
	"github.com/spf13/cobra"
)

func newReplayCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay frames from a YAML command script",
		Long: `Replay feeds the frames of a YAML script through the bridge and writes
one PNG per frame. With --watch the config file is watched and background
color and log level changes apply from the next frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := script.LoadFile(args[0])
			if err != nil {
				return err
			}
			job := frameJob{engine: eng, done: eng.Done}
			job.realtime, _ = cmd.Flags().GetBool("realtime")
			// Scripts play to their end unless a frame budget was given.
			if !explicit(a, cmd, "frames") {
				a.cfg.Frames = 0
			}

			if watch && a.v.ConfigFileUsed() == "" {
				a.log.Warn("no config file to watch")
			} else if watch {
				reload := make(chan *config.Config, 1)
				a.v.OnConfigChange(func(e fsnotify.Event) {
					cfg, err := config.Load(a.v)
					if err != nil {
						a.log.Warn("ignoring invalid config change", "file", e.Name, "err", err)
						return
					}
					select {
					case reload <- cfg:
					default:
					}
				})
				a.v.WatchConfig()
				job.reload = reload
				job.realtime = true
			}

			n, err := a.paint(cmd.Context(), job)
			if err != nil {
				return err
			}
			a.log.Info("replay finished", "frames", n, "script", args[0])
			cmd.Printf("replayed %d frames\n", n)
			return nil
		},
	}
	addFrameFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the config file while replaying")
	return cmd
}
