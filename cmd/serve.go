package cmd

import (
	"minimax/meta"
	"minimax/server"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var (
		addr     string
		maxNodes int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve solve and estimate requests over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = getEnv("ADDR", addr)
			}
			return server.New(server.WithMaxNodes(maxNodes)).Start(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (ADDR in the environment)")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", meta.SERVER_MAX_NODES, "node budget of every solve request")
	return cmd
}
