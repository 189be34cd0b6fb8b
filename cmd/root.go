package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ZanzyTHEbar/tasksort/internal/adapters/input"
	"github.com/ZanzyTHEbar/tasksort/internal/adapters/output"
	"github.com/ZanzyTHEbar/tasksort/internal/app"
	"github.com/ZanzyTHEbar/tasksort/internal/config"
	"github.com/ZanzyTHEbar/tasksort/internal/domain"
	"github.com/ZanzyTHEbar/tasksort/internal/logging"
	"github.com/ZanzyTHEbar/tasksort/internal/ports"
)

// stdinPath selects standard input as the input file.
const stdinPath = "-"

// cli carries the flag values and the state resolved from them before a
// command runs.
type cli struct {
	configPath   string
	logLevel     string
	format       string
	inputFormat  string
	separator    string
	showPriority bool
	color        bool

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	cmd := &cobra.Command{
		Use:   "tasksort [flags] <input>",
		Short: "Group dependent tasks into priority levels",
		Long: `tasksort reads "DEPENDENCY->TASK" lines and prints the tasks grouped by
priority: tasks without dependencies first, then every task whose
dependencies all appear on earlier lines. Tasks on one line are sorted.

Use "-" as <input> to read standard input. A file named like a
subcommand (watch, interactive, version) must be given with a path,
for example ./version.`,
		Example: `  tasksort plan.txt
  tasksort --show-priority --color plan.txt
  tasksort --input-format yaml --format dot plan.yaml | dot -Tsvg > plan.svg`,
		Args:              exactArgs(1),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, err := c.reader(cmd, args[0])
			if err != nil {
				return err
			}
			sorter, err := c.newSorter(cmd, reader)
			if err != nil {
				return err
			}
			_, err = sorter.Run(cmd.Context())
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return domain.InvalidArgument("%v", err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "tasksort.json", "path to a JSON configuration file")
	flags.StringVar(&c.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVarP(&c.format, "format", "f", "", "output format (text, json, yaml, dot)")
	flags.StringVarP(&c.inputFormat, "input-format", "i", "", "input format (text, json, yaml)")
	flags.StringVarP(&c.separator, "separator", "s", "", `separator between dependency and task (default "->")`)
	flags.BoolVarP(&c.showPriority, "show-priority", "p", false, "prefix each text line with its priority")
	flags.BoolVar(&c.color, "color", false, "colorize text output")

	cmd.AddCommand(newWatchCmd(c), newInteractiveCmd(c), newVersionCmd())
	return cmd
}

// setup resolves the configuration: defaults, then the config file, then
// TASKSORT_* variables, then explicitly set flags.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	bootstrap, err := logging.New(c.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg, err := config.LoadFromFile(c.configPath, bootstrap)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return err
	}

	flags := cmd.Flags()
	setIfChanged(flags, "log-level", &cfg.LogLevel, c.logLevel)
	setIfChanged(flags, "format", &cfg.Output.Format, output.Format(c.format))
	setIfChanged(flags, "input-format", &cfg.Input.Format, input.Format(c.inputFormat))
	setIfChanged(flags, "separator", &cfg.Input.Separator, c.separator)
	setIfChanged(flags, "show-priority", &cfg.Output.ShowPriority, c.showPriority)
	setIfChanged(flags, "color", &cfg.Output.Color, c.color)

	if err := cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	c.logger, err = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	return err
}

func setIfChanged[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}

func (c *cli) reader(cmd *cobra.Command, path string) (ports.PairReader, error) {
	if path == stdinPath {
		return input.NewReader(c.cfg.Input.Format, cmd.InOrStdin(), c.cfg.Input.Separator)
	}
	return input.NewFileReader(path, c.cfg.Input.Format, c.cfg.Input.Separator)
}

// newSorter builds a Sorter writing the configured format to stdout.
func (c *cli) newSorter(cmd *cobra.Command, reader ports.PairReader) (*app.Sorter, error) {
	writer, err := output.New(c.cfg.Output.Format, cmd.OutOrStdout(), output.Options{
		ShowPriority: c.cfg.Output.ShowPriority,
		Color:        c.cfg.Output.Color,
	})
	if err != nil {
		return nil, err
	}
	return app.NewSorter(reader, writer, c.logger), nil
}

// exactArgs is cobra.ExactArgs reporting domain.ErrInvalidArgument.
func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return domain.InvalidArgument("%v", err)
		}
		return nil
	}
}
