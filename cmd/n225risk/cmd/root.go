package cmd

import (
	"fmt"

	"github.com/rustyeddy/n225risk/config"
	"github.com/rustyeddy/n225risk/internal/logger"
	"github.com/spf13/cobra"
)

// app is the state shared by subcommands for one invocation.
type app struct {
	env       *config.Env
	log       logger.Logger
	sync      func()
	newLogger func(logger.LogLevel) (logger.Logger, func(), error)
}

func zapLogger(level logger.LogLevel) (logger.Logger, func(), error) {
	l, sync, err := logger.NewZapLogger(level)
	if err != nil {
		return nil, nil, err
	}
	return l, sync, nil
}

func newApp() *app {
	return &app{log: logger.NewNop(), sync: func() {}, newLogger: zapLogger}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "n225risk",
		Short: "Margin and P/L calculator for laddered Nikkei 225 CFD orders",
		Long: `n225risk lays out a ladder of orders between a start and an end price and
computes, per order and in total:
  - required margin (price × quantity)
  - optional margin needed to stay clear of the loss-cut rate
  - open profit/loss at the current price (leverage 10×)

Direction is inferred: start < end buys up the ladder, start > end sells down it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.LoadEnv()
			if err != nil {
				return err
			}
			a.env = env

			level, err := logger.ParseLevel(env.LogLevel)
			if err != nil {
				return fmt.Errorf("N225RISK_LOG_LEVEL: %w", err)
			}
			l, sync, err := a.newLogger(level)
			if err != nil {
				return err
			}
			a.log, a.sync = l, sync
			return nil
		},
	}

	root.AddCommand(newCalcCmd(a))
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// run executes root and flushes the logger whether or not the command failed;
// cobra skips post-run hooks after an error.
func run(root *cobra.Command, a *app) error {
	defer func() { a.sync() }()
	return root.Execute()
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	a := newApp()
	return run(newRootCmd(a), a)
}
