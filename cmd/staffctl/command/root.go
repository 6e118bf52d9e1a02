package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/employee-manager-go/internal/app"
	"github.com/cmlabs-hris/employee-manager-go/internal/config"
	"github.com/spf13/cobra"
)

type commandline struct {
	driver   string
	logLevel string

	repos    *app.Repositories
	services *app.Services
}

func NewRootCmd() *cobra.Command {
	cl := &commandline{}

	cmd := &cobra.Command{
		Use:   "staffctl",
		Short: "staffctl - search and maintain employee records from the terminal",
		Long: `staffctl - search and maintain employee records from the terminal.

Storage settings are read from .env and the environment (DB_DRIVER, DB_HOST,
DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSL_MODE). Flags take precedence
over environment variables.
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		PersistentPreRunE: cl.connect,
		PersistentPostRun: cl.disconnect,
	}

	cmd.PersistentFlags().StringVar(&cl.driver, "driver", "", "storage driver: postgres or memory (overrides DB_DRIVER)")
	cmd.PersistentFlags().StringVar(&cl.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")

	cmd.AddCommand(
		cl.employeesCmd(),
		cl.branchesCmd(),
		cl.salesCmd(),
	)
	return cmd
}

// connect loads the configuration and opens storage for one command.
func (cl *commandline) connect(cmd *cobra.Command, _ []string) error {
	if cl.driver != "" {
		if err := os.Setenv("DB_DRIVER", cl.driver); err != nil {
			return err
		}
	}
	if cl.logLevel != "" {
		if err := os.Setenv("LOG_LEVEL", cl.logLevel); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(app.NewLogger(cfg, cmd.ErrOrStderr()))

	repos, err := app.OpenRepositories(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	cl.repos = repos
	cl.services = app.NewServices(repos)
	return nil
}

func (cl *commandline) disconnect(_ *cobra.Command, _ []string) {
	if cl.repos != nil {
		cl.repos.Close()
		cl.repos = nil
	}
}

func printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
