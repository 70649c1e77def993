package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpgo/funnel-label/internal/config"
	"github.com/rpgo/funnel-label/internal/domain"
	"github.com/rpgo/funnel-label/internal/format"
	"github.com/rpgo/funnel-label/internal/funnel"
	"github.com/rpgo/funnel-label/internal/logging"
	"github.com/rpgo/funnel-label/internal/output"
)

// Options holds the values of the global flags.
type Options struct {
	Locale   string
	Template string
	LogLevel string
	EnvFile  string
}

// NewRootCommand builds the funnel-label command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &Options{}
	rootCmd := &cobra.Command{
		Use:           "funnel-label",
		Short:         "Format funnel segment labels from templates",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.applyEnv(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.Locale, "locale", "", "Locale used for digit grouping (default: host locale, env FUNNEL_LOCALE)")
	rootCmd.PersistentFlags().StringVarP(&opts.Template, "template", "t", "", "Label template using {l} {v} {f} {c} (env FUNNEL_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error (env FUNNEL_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "Optional dotenv file with FUNNEL_* defaults")

	rootCmd.AddCommand(newFormatCommand(opts), newRenderCommand(opts), newFormatsCommand())
	return rootCmd
}

// applyEnv fills unset flags from the environment and initialises logging.
func (o *Options) applyEnv(cmd *cobra.Command) error {
	env := config.LoadEnv(o.EnvFile)
	if o.Locale == "" {
		o.Locale = env.Locale
	}
	if o.Template == "" {
		o.Template = env.Format
	}
	if o.LogLevel == "" {
		o.LogLevel = env.LogLevel
	}
	return logging.InitConsoleLog(cmd.ErrOrStderr(), o.LogLevel)
}

func (o *Options) formatter() (format.Formatter, error) {
	tag, err := format.ParseLocale(o.Locale)
	if err != nil {
		return format.Formatter{}, errors.Wrapf(err, "invalid locale %q", o.Locale)
	}
	return format.New(tag), nil
}

func newFormatCommand(opts *Options) *cobra.Command {
	var (
		label      string
		value      float64
		conversion string
		formatted  string
	)
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format a single data point",
		Example: `  funnel-label format -t "{l}: {v} ({f}, {c})" --label Visits --value 1234 --conversion 50 --locale en
  funnel-label format -t "{f}" --value 1234 --formatted-value 1.2K`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.formatter()
			if err != nil {
				return err
			}
			dp := domain.NewDataPoint(label, value)
			if conversion != "" {
				if dp.Conversion, err = parseConversion(conversion); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("formatted-value") {
				dp = dp.WithFormattedValue(formatted)
			}
			tmpl := opts.Template
			if tmpl == "" {
				tmpl = string(funnel.DefaultTemplate)
			}
			log.Debug().Str("template", tmpl).Str("locale", f.Locale.String()).Msg("formatting data point")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), f.Format(dp, format.Template(tmpl)))
			return err
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Segment label")
	cmd.Flags().Float64Var(&value, "value", 0, "Raw segment value")
	cmd.Flags().StringVar(&conversion, "conversion", "", "Conversion percentage; empty or NaN when not applicable")
	cmd.Flags().StringVar(&formatted, "formatted-value", "", "Pre-formatted value used verbatim for {f}")
	return cmd
}

func newRenderCommand(opts *Options) *cobra.Command {
	var (
		outFormat string
		outFile   string
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Label every segment of a funnel definition (YAML or TOML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			f, err := opts.formatter()
			if err != nil {
				return err
			}
			var d format.Descriptor
			if opts.Template != "" {
				d = format.Template(opts.Template)
			}
			report := funnel.NewLabeler(f, logging.Global()).Label(def, d)
			return emit(cmd.OutOrStdout(), &report, outFormat, outFile)
		},
	}
	cmd.Flags().StringVarP(&outFormat, "output", "o", "console", "Output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	cmd.Flags().StringVar(&outFile, "out", "", "Write to this file instead of stdout")
	return cmd
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(w, "aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			return nil
		},
	}
}

func emit(w io.Writer, report *domain.LabeledFunnel, outFormat, outFile string) error {
	if outFile == "" {
		return output.Write(w, report, outFormat)
	}
	path, err := output.GenerateReport(report, outFormat, outFile)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Str("format", outFormat).Msg("report written")
	return nil
}

func parseConversion(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if strings.EqualFold(s, "nan") || s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid conversion %q", s)
	}
	return v, nil
}
