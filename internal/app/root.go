package app

import (
	"fmt"
	"os"

	"github.com/Klea008/bookctl/internal/api"
	"github.com/Klea008/bookctl/internal/config"
	"github.com/Klea008/bookctl/internal/session"
	"github.com/Klea008/bookctl/internal/tui"
	"github.com/Klea008/bookctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

var (
	cfg    *config.Config
	client *api.Client
	store  *session.Store

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
)

var rootCmd = &cobra.Command{
	Use:   "bookctl",
	Short: "Browse and manage a remote bookstore catalog from the terminal",
	Long: `bookctl is a terminal client for a hosted bookstore catalog.

Book data lives behind the catalog's HTTP API; bookctl only holds your
session cookie and display preferences locally.

Run 'bookctl' with no arguments to launch the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runHub()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bookctl/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client = api.New(cfg.API.BaseURL, cfg.Session.CookieFile, cfg.TimeoutDuration())
		store = session.NewStore(client)
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newBrowseCmd(),
		newListsCmd(),
		newManageCmd(),
		newPagedCmd(),
		newInfoCmd(),
		newGenresCmd(),
		newAddCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newLoginCmd(),
		newSignupCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// printField prints an aligned name/value row.
func printField(name, value string) {
	fmt.Printf("  %-14s %s\n", color.HiBlackString(name), value)
}
