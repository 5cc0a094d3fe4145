package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlist/lib/xlog"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "xlist",
		Short:        "Replays operations against a singly or doubly linked list.",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}
	root.AddCommand(newRunCommand())
	return root
}

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [op...]",
		Short: "Runs the operations of --script followed by the ones given as arguments",
		Example: `  xlist run --kind singly "insert_last 1" "insert_last 2" print
  xlist run --script ops.txt --log.level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ops, err := collectOps(cfg.Script, cmd.InOrStdin(), args)
			if err != nil {
				logger.ErrorStack(err, "invalid operations")
				return err
			}
			r, err := newRunner(cfg.Kind, cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}
			if err = r.run(ops); err != nil {
				logger.ErrorStack(err, "script aborted")
			}
			return err
		},
	}
	cmd.Flags().AddFlagSet(flagSet())
	return cmd
}

func newLogger(cfg LogConfig, out io.Writer) (xlog.XLogger, error) {
	enc, err := xlog.ParseLogEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}
	opts := []xlog.XLoggerOption{
		xlog.WithXLoggerLevel(xlog.LogLevel(strings.ToUpper(cfg.Level))),
		xlog.WithXLoggerEncoder(enc),
		xlog.WithXLoggerOutput(out),
		xlog.WithXLoggerTimeEncoder(logTimeEncoders[cfg.Time]),
	}
	if cfg.Color && enc == xlog.PlainText {
		opts = append(opts, xlog.WithXLoggerLevelEncoder(zapcore.CapitalColorLevelEncoder))
	}
	return xlog.NewXLogger(opts...)
}
