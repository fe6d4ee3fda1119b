package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/flashpack/internal/card"
	"github.com/arcanaland/flashpack/internal/packet"
)

var (
	tipGradientStart, _ = colorful.Hex("#00bcd4")
	tipGradientEnd, _   = colorful.Hex("#e040fb")
)

var showCmd = &cobra.Command{
	Use:   "show [packet_name|path] [card_name]",
	Short: "Display the cards of a packet directory",
	Long: `Show prints the question and tips of every card in a packet directory, in the
order they are written to the packet. Pass a card name to show only the cards
with that name.

Examples:
  flashpack show capitals
  flashpack show capitals france`,
	Args: cobra.RangeArgs(1, 2),
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
		cards, err := packet.Collect(sourcePath, opts)
		if err != nil {
			return fmt.Errorf("error loading packet: %w", err)
		}

		if len(args) == 2 {
			cards = filterCards(cards, args[1])
			if len(cards) == 0 {
				return fmt.Errorf("card not found: %s", args[1])
			}
		}

		width := terminalWidth()
		out := cmd.OutOrStdout()
		for i, c := range cards {
			size := 0
			if encoded, err := card.Encode(c, opts.FormatVersion); err == nil {
				size = len(encoded)
			}
			displayCard(out, c, i, size, width)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func filterCards(cards []card.Card, name string) []card.Card {
	var matched []card.Card
	for _, c := range cards {
		if c.Name == name {
			matched = append(matched, c)
		}
	}
	return matched
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// displayCard prints one card with its tips wrapped to width
func displayCard(w io.Writer, c card.Card, index, size, width int) {
	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s%s  %s\n",
		color.CyanString("#%d ", index+1),
		color.HiWhiteString(c.Name),
		color.HiBlackString("(%d bytes)", size))

	for i, line := range wrapText(c.Question, textWidth) {
		prefix := "    "
		if i == 0 {
			prefix = color.CyanString("Q:") + "  "
		}
		fmt.Fprintf(w, "  %s%s\n", prefix, line)
	}

	for i, tip := range c.Tips {
		bullet := tipBullet(i, len(c.Tips))
		for j, line := range wrapText(tip, textWidth) {
			if j == 0 {
				fmt.Fprintf(w, "    %s %s\n", bullet, line)
			} else {
				fmt.Fprintf(w, "      %s\n", line)
			}
		}
	}
}

// tipBullet renders the bullet for tip i, shaded along a gradient so the
// order of the tips stays visible
func tipBullet(i, count int) string {
	if color.NoColor {
		return "-"
	}
	t := 0.0
	if count > 1 {
		t = float64(i) / float64(count-1)
	}
	c := tipGradientStart.BlendHcl(tipGradientEnd, t).Clamped()
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm•\x1b[0m", r, g, b)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
