package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sartorproj/golinfit/regression"
)

// envPrefix prefixes environment overrides, e.g. FITLINE_ALPHA=0.01.
const envPrefix = "FITLINE"

// app carries the state shared by all commands.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

// newApp returns an app; a nil logger is built from --verbose on first run.
func newApp(logger *zap.Logger) *app {
	return &app{v: viper.New(), logger: logger}
}

// newRootCmd builds the command tree of a fresh app.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	return newApp(logger).rootCmd()
}

// execute runs the command tree with args and flushes the logger on every
// exit path, including failed commands. A nil out keeps cobra's defaults.
func (a *app) execute(out io.Writer, args []string) error {
	root := a.rootCmd()
	if out != nil {
		root.SetOut(out)
		root.SetErr(out)
	}
	root.SetArgs(args)

	defer a.sync()
	return root.Execute()
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fitline",
		Short: "Fit straight lines with confidence and prediction intervals",
		Long: `fitline fits y = a + b*x by ordinary least squares and reports
confidence intervals for intercept and slope, residual diagnostics and
prediction intervals for new x-values.

Every flag can also be set through the environment (FITLINE_ALPHA,
FITLINE_BAND_CSV, ...) or a YAML/JSON/TOML file passed with --config.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.Bool("verbose", false, "development logging at debug level")
	pf.String("config", "", "configuration file")
	pf.Float64("alpha", regression.DefaultAlpha, "significance level of all intervals")
	pf.String("json", "", "write results as JSON to this file")

	root.AddCommand(a.newRunCmd(), a.newAnscombeCmd())

	return root
}

// setup binds flags, environment and config file into viper and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if a.logger == nil {
		logger, err := newLogger(a.v.GetBool("verbose"))
		if err != nil {
			return err
		}
		a.logger = logger
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func (a *app) fitOptions() ([]regression.Option, error) {
	opts := []regression.Option{regression.WithAlpha(a.v.GetFloat64("alpha"))}

	newX, err := parseFloats(a.v.GetString("newx"))
	if err != nil {
		return nil, fmt.Errorf("--newx: %w", err)
	}
	if len(newX) > 0 {
		opts = append(opts, regression.WithNewX(newX...))
	}

	return opts, nil
}
