package main

import (
	"log"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	rostermcp "github.com/ajitpratap0/roster/internal/mcp"
)

func mcpCmd(seed seedFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP (Model Context Protocol) server over stdio",
		Long: `Starts an MCP JSON-RPC 2.0 server that reads from stdin and writes to stdout.
All diagnostic logs go to stderr so that stdout remains exclusively MCP protocol traffic.
The roster is seeded and stamped with the run date once, before serving.

Tools exposed:
  list_persons    all persons in store order
  filter_persons  persons with an exact status
  sort_persons    all persons sorted by a field
  get_person      one person by ID
  stats           roster size and counts by status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closer := newLogger(cmd)
			defer func() { _ = closer.Close() }()

			st, err := openStore(seed, logger)
			if err != nil {
				return err
			}

			srv := rostermcp.NewServer(st, version, logger)

			// mcp-go takes a standard log.Logger for transport errors.
			errLogger := log.New(cmd.ErrOrStderr(), "mcp: ", log.LstdFlags)

			logger.Info("mcp: roster MCP server starting", "transport", "stdio", "persons", st.Len())

			return mcpserver.ServeStdio(
				srv.MCPServer(),
				mcpserver.WithErrorLogger(errLogger),
			)
		},
	}

	return cmd
}
