package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the encoder version and directory layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Encoder version: %s\n", color.HiWhiteString("%d.0", cfg.FormatVersion))
		fmt.Fprintf(out, "  Unencoded packet directories should lie in %s/\n", cfg.InDir)
		fmt.Fprintf(out, "  Encoded packets are written to %s/<packet_name>%s\n", cfg.OutDir, cfg.PacketExt)
		fmt.Fprintf(out, "  Card extension is %s\n", cfg.CardExt)
		if cfg.DefaultPacket != "" {
			fmt.Fprintf(out, "  Default packet is %s\n", cfg.DefaultPacket)
		}
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  flashpack encode PACKET_NAME    # ENCODE")
		fmt.Fprintln(out, "  flashpack info                  # THIS DIALOGUE")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
