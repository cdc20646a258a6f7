package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minebench/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeManual bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live watcher over SSH",
	Long: `Start an SSH server that shows a bot evaluation run to every
connecting user. Each connection gets its own run with a fresh seed.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.minebench/host_key

Examples:
  minebench serve                           # Listen on :23234
  minebench serve --ssh :2222 --bot random  # Port 2222, random bot
  minebench serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().AddFlagSet(runCmd.Flags())
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagServeManual, "manual", false, "Sessions advance one move per keypress")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	board, err := cfg.Board.Resolve()
	if err != nil {
		return err
	}

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Watch: tui.WatchConfig{
			Board:  board,
			Games:  cfg.Run.Games,
			Seed:   cfg.Run.Seed,
			Manual: flagServeManual,
			Delay:  time.Duration(cfg.Observer.DelayMS) * time.Millisecond,
		},
		Bot:     cfg.Run.Bot,
		BotSeed: cfg.Run.BotSeed,
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		return fmt.Errorf("cannot start server: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Serving %s on %s over SSH at %s\n", cfg.Run.Bot, boardString(board), server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
