package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greensward/tinygolf/internal/platform/tui"
)

var (
	flagServeHost   string
	flagServePort   int
	flagKeyPath     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play a round.

Finished rounds from remote sessions land in the server's shared history.

Host key handling:
  - If --keypath is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tinygolf/host_key

Examples:
  tinygolf serve                       # Listen on :23234 with auto-generated key
  tinygolf serve --port 2222           # Listen on port 2222
  tinygolf serve --keypath ./host_key  # Use specific host key
  tinygolf serve --db ./golf.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeHost, "host", "", "Host to listen on (empty for all interfaces)")
	serveCmd.Flags().IntVar(&flagServePort, "port", 23234, "Port to listen on")
	serveCmd.Flags().StringVar(&flagKeyPath, "keypath", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     fmt.Sprintf("%s:%d", flagServeHost, flagServePort),
		HostKeyPath: flagKeyPath,
		DBPath:      flagDBPath,
		Golf:        loadGolfConfig(),
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %d\n", flagServePort)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
