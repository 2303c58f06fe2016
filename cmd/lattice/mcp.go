package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/internal/logging"
	mcpAdapter "github.com/aretw0/lattice/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the planner as an MCP server over stdin/stdout so agent tooling can inspect timelines and round-trip share strings.`,
	Run: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logger := logging.New(logging.ParseLevel(logLevel))

		planner := lattice.New(lattice.WithLogger(logger))

		server := mcpAdapter.NewServer(planner)
		if err := server.ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
