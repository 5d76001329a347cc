package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/gogpu/ggbridge"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case "text":
				cmd.Printf("ggbridge %s (%s %s/%s)\n", ggbridge.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
				return nil
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(map[string]string{
					"version":  ggbridge.Version,
					"go":       runtime.Version(),
					"platform": runtime.GOOS + "/" + runtime.GOARCH,
				})
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}
