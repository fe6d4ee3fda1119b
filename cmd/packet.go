package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/flashpack/internal/config"
	"github.com/arcanaland/flashpack/internal/packet"
)

// packetCmd represents the packet command group
var packetCmd = &cobra.Command{
	Use:   "packet",
	Short: "Manage the unencoded packet directories",
	Long:  `Commands for managing the packet directories under in_dir.`,
}

// packetListCmd represents the packet ls command
var packetListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List packet directories and their card counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if _, err := os.Stat(cfg.InDir); os.IsNotExist(err) {
			fmt.Fprintf(out, "Packet directory %s does not exist.\n", cfg.InDir)
			fmt.Fprintln(out, "Run 'flashpack packet init' to create it.")
			return nil
		}

		entries, err := os.ReadDir(cfg.InDir)
		if err != nil {
			return fmt.Errorf("error reading packet directory: %w", err)
		}

		found := 0
		for _, entry := range entries {
			entryPath := filepath.Join(cfg.InDir, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil {
				fmt.Fprintf(out, "Error resolving entry %s: %v\n", entry.Name(), err)
				continue
			}
			if !fileInfo.IsDir() {
				continue
			}
			found++

			marker := " "
			if entry.Name() == cfg.DefaultPacket {
				marker = "*"
			}

			opts, m, err := packetOptions(cfg, entryPath)
			if err != nil {
				fmt.Fprintf(out, "%s %s (invalid: %v)\n", marker, entry.Name(), err)
				continue
			}
			cards, err := packet.Collect(entryPath, opts)
			if err != nil {
				fmt.Fprintf(out, "%s %s (invalid: %v)\n", marker, entry.Name(), err)
				continue
			}
			if m.Name != "" {
				fmt.Fprintf(out, "%s %s [%s] (%d cards)\n", marker, entry.Name(), m.Name, len(cards))
			} else {
				fmt.Fprintf(out, "%s %s (%d cards)\n", marker, entry.Name(), len(cards))
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No packets found.")
			fmt.Fprintln(out, "Create a directory of card files under:", cfg.InDir)
		}
		return nil
	},
}

// packetSetDefaultCmd represents the packet set-default command
var packetSetDefaultCmd = &cobra.Command{
	Use:   "set-default [packet_name]",
	Short: "Set the packet encoded when no name is given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packetName := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		packetPath := cfg.GetPacketInputPath(packetName)
		opts, _, err := packetOptions(cfg, packetPath)
		if err != nil {
			return fmt.Errorf("not a valid packet: %w", err)
		}
		if _, err := packet.Collect(packetPath, opts); err != nil {
			return fmt.Errorf("not a valid packet: %w", err)
		}

		if err := config.SetDefaultPacket(packetName); err != nil {
			return fmt.Errorf("error setting default packet: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default packet set to: %s\n", packetName)
		return nil
	},
}

// packetInitCmd represents the packet init command
var packetInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the input and output directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		for _, dir := range []string{cfg.InDir, cfg.OutDir} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("error creating %s: %w", dir, err)
			}
		}

		fmt.Fprintln(out, "Packet sources go in:", cfg.InDir)
		fmt.Fprintln(out, "Encoded packets go in:", cfg.OutDir)
		fmt.Fprintln(out, "Config file:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(packetCmd)
	packetCmd.AddCommand(packetListCmd)
	packetCmd.AddCommand(packetSetDefaultCmd)
	packetCmd.AddCommand(packetInitCmd)
}
