package main

import (
	"github.com/gogpu/ggbridge/engine/demo"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [label...]",
		Short: "Paint frames of the built-in demo engine",
		Long: `Render paints frames of the demo engine, a row of labelled boxes sized
from measured text over a scrolling grid, and writes one PNG per frame.`,
		Example: `  ggbridge render --frames 30 --out frames/
  ggbridge render --backend recording --log-level debug hello world`,
		RunE: func(cmd *cobra.Command, args []string) error {
			realtime, _ := cmd.Flags().GetBool("realtime")
			n, err := a.paint(cmd.Context(), frameJob{engine: demo.New(args...), realtime: realtime})
			if err != nil {
				return err
			}
			a.log.Info("render finished", "frames", n, "dir", a.cfg.Output.Dir)
			cmd.Printf("painted %d frames\n", n)
			return nil
		},
	}
	addFrameFlags(cmd.Flags())
	return cmd
}
