package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/andreixhz/tools-cli/internal/buildmeta"
	"github.com/andreixhz/tools-cli/internal/core"
	"github.com/andreixhz/tools-cli/pkg/config"
	"github.com/andreixhz/tools-cli/pkg/executor"
	"github.com/andreixhz/tools-cli/pkg/notify"
	"github.com/andreixhz/tools-cli/pkg/tools"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Deps lets callers replace the collaborators commands use. Zero fields get
// the real implementations.
type Deps struct {
	Executor executor.Executor
	Logger   *zap.Logger
}

// app carries state shared by every command of one invocation.
type app struct {
	deps       Deps
	configPath string
	verbose    bool
	logger     *zap.Logger
}

// NewRootCmd builds the full command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	a := &app{deps: deps, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "tools-cli",
		Short: "tools-cli - manage local Kubernetes clusters and their tooling",
		Long: `tools-cli manages Kubernetes clusters, development tools and GitOps bootstrapping.
Currently supports local k3d clusters, with placeholders for AWS EKS and Azure AKS.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", buildmeta.Version, buildmeta.Commit, buildmeta.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = a.newLogger(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every external command to stderr")

	rootCmd.AddCommand(newClusterCmd(a))
	rootCmd.AddCommand(newToolsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	return Run(NewRootCmd(Deps{}), os.Args[1:])
}

// Run executes rootCmd with args. Any error is printed once to the command's
// error stream and mapped to exit code 1.
func Run(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		notify.Errorf(rootCmd.ErrOrStderr(), "%v", err)
		return 1
	}

	return 0
}

func (a *app) newLogger(w io.Writer) *zap.Logger {
	if a.deps.Logger != nil {
		return a.deps.Logger
	}

	if !a.verbose {
		return zap.NewNop()
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel))
}

func (a *app) executor() executor.Executor {
	if a.deps.Executor != nil {
		return a.deps.Executor
	}

	return executor.NewCommandExecutor(a.logger)
}

func (a *app) configHandler() *config.Handler {
	return config.NewHandler(a.configPath)
}

func (a *app) clusterManager(out io.Writer) *core.ClusterManager {
	return core.NewClusterManager(
		core.WithExecutor(a.executor()),
		core.WithWriter(out),
		core.WithLogger(a.logger),
	)
}

func (a *app) toolManager(out io.Writer) *tools.Manager {
	return tools.NewManager(a.executor(), out, a.logger)
}
