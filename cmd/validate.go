package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/flashpack/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [packet_name|path]",
	Short: "Check a packet directory without writing a packet",
	Long: `Validate reads and encodes every card of a packet directory and reports all
problems at once: empty card files, invalid UTF-8 and fields too large for the
packet format. Duplicate card names and blank questions are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sourcePath, err := cfg.ResolvePacketPath(args[0])
		if err != nil {
			return err
		}

		opts, _, err := packetOptions(cfg, sourcePath)
		if err != nil {
			return err
		}

		v := validator.NewValidator(sourcePath, opts)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "%s Packet '%s' is valid: %d cards, %d bytes encoded.\n",
				color.GreenString("✅"), sourcePath, results.Cards, results.Bytes)
		} else {
			fmt.Fprintf(out, "%s Packet '%s' has %d validation errors:\n",
				color.RedString("❌"), sourcePath, len(results.Errors))
			for i, msg := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, msg)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, color.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
