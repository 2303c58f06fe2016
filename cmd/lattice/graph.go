package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/lattice/internal/presentation/graph"
	"github.com/aretw0/lattice/internal/presentation/tui"
	"github.com/aretw0/lattice/pkg/share"
	"github.com/aretw0/lattice/pkg/timeline"
)

var graphCmd = &cobra.Command{
	Use:   "graph [share-string]",
	Short: "Render the action graph of a shared scenario",
	Long:  `Decodes a share string (argument or stdin) and renders its tracks, actions, and connections as a Mermaid flowchart. Inside a terminal the output is wrapped in rendered markdown; when piped, raw Mermaid syntax is printed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shareStr, err := readShareArg(args)
		if err != nil {
			return err
		}

		snap, err := share.New().Decode(shareStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, tui.Failure("share string is invalid or corrupted"))
			return err
		}

		board := timeline.New(timeline.WithTrackCount(len(snap.Tracks)))
		if err := board.Restore(snap); err != nil {
			fmt.Fprintln(os.Stderr, tui.Failure("share string is invalid or corrupted"))
			return err
		}

		// No roster is loaded here, so substitute the operator id for the
		// display name on bound tracks.
		views := board.TrackViews()
		for i := range views {
			if views[i].Bound() {
				views[i].Name = views[i].Operator
			}
		}

		mermaid := graph.GenerateMermaid(views, board.Connections())
		markdown := "# Scenario Graph\n\n```mermaid\n" + mermaid + "```\n"
		fmt.Print(tui.RenderMarkdown(markdown))
		return nil
	},
}

func readShareArg(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read share string from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
