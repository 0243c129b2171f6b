package main

import (
	"cmp"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode menu.
Scores are stored per-server (all users share the same leaderboard).

Flags override the ssh section of the config file.

Host key handling:
  - If --host-key (or ssh.host_key_path) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Examples:
  t2048 serve
  t2048 serve --ssh :23234
  t2048 serve --host-key ./my_host_key --idle-timeout 10m

Users can connect with:
  ssh localhost -p 2222`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default: ssh.address from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default: ssh.host_key_path from config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default: ssh.idle_timeout from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     cmp.Or(flagSSHAddr, appConfig.SSH.Address),
		HostKeyPath: cmp.Or(flagHostKey, appConfig.SSH.HostKeyPath),
		DBPath:      flagDBPath,
		IdleTimeout: cmp.Or(flagIdleTimeout, appConfig.SSH.IdleTimeout),
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("t2048-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting 2048 SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
