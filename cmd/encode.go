package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/flashpack/internal/logging"
	"github.com/arcanaland/flashpack/internal/packet"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [packet_name]",
	Short: "Encode a packet directory into a binary packet file",
	Long: `Encode reads every card file under <in_dir>/<packet_name> and writes the packet
to <out_dir>/<packet_name><packet_ext>. Without a packet name the configured
default packet is encoded.

Examples:
  flashpack encode capitals
  flashpack encode --in-dir ./cards -o capitals.pkt capitals`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		packetName := cfg.DefaultPacket
		if len(args) == 1 {
			packetName = args[0]
		}
		if packetName == "" {
			return fmt.Errorf("no packet name given and no default_packet configured")
		}

		inPath := cfg.GetPacketInputPath(packetName)
		if _, err := os.Stat(inPath); os.IsNotExist(err) {
			return &packet.PathNotFoundError{Path: inPath}
		}

		logger := logging.Logger()
		opts, m, err := packetOptions(cfg, inPath)
		if err != nil {
			return err
		}

		cards, err := packet.Collect(inPath, opts)
		if err != nil {
			return err
		}

		data, err := packet.Encode(cards, opts)
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			outPath = cfg.GetPacketOutputPath(packetName)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("error writing packet: %w", err)
		}

		logger.Info().Str("packet", m.DisplayName()).Str("path", outPath).Int("cards", len(cards)).Int("bytes", len(data)).Msg("packet written")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.GreenString("Encoded!"))
		fmt.Fprintf(out, "%s -> %s (%d cards, %d bytes)\n", inPath, outPath, len(cards), len(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringP("output", "o", "", "Write the packet to this file instead of <out_dir>/<packet_name><packet_ext>")
}
