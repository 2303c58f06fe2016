package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lattice/internal/presentation/tui"
	"github.com/aretw0/lattice/pkg/share"
	"github.com/aretw0/lattice/pkg/timeline"
)

var shareCmd = &cobra.Command{
	Use:   "share [share-string]",
	Short: "Inspect a share string",
	Long:  `Decodes a share string (argument or stdin), validates it, and prints a summary of the scenario it carries. With --base-url a full share link is printed as well.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL, _ := cmd.Flags().GetString("base-url")

		shareStr, err := readShareArg(args)
		if err != nil {
			return err
		}
		// Accept a pasted share link as well as a bare payload.
		if payload, ok := share.FromLink(shareStr); ok {
			shareStr = payload
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

		fmt.Println(tui.Success("share string is valid"))

		actions := 0
		for i, view := range board.TrackViews() {
			operator := view.Operator
			if !view.Bound() {
				operator = "(unassigned)"
			}
			fmt.Printf("  track %d: %s, %d actions\n", i, operator, len(view.Actions))
			actions += len(view.Actions)
		}
		fmt.Printf("  %d actions, %d connections\n", actions, len(board.Connections()))

		if baseURL != "" {
			link, err := share.Link(baseURL, shareStr)
			if err != nil {
				return err
			}
			fmt.Println(link)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().String("base-url", "", "Base URL to build a shareable link")
}
