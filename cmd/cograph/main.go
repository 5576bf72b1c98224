package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cographio/cograph/internal/config"
)

// Build-time variables set via ldflags.
var (
	version   = "0.3.0"
	commit    = ""
	buildDate = ""
)

var (
	flagInput     string
	flagReportDir string
	flagTop       int
	flagFmt       string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("cograph version %s (commit: %s, built: %s)", version, commit, buildDate)
	}

	return fmt.Sprintf("cograph version %s-dev", version)
}

// configFile holds optional defaults read from ~/.cograph/config.yaml.
type configFile struct {
	Input       string `yaml:"input"`
	ReportDir   string `yaml:"report_dir"`
	Top         int    `yaml:"top"`
	DatabaseURL string `yaml:"database_url"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "cograph",
		Short:        "Cograph — day/area co-occurrence network analyzer",
		Version:      versionString(),
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "input CSV path (env: INPUT_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagReportDir, "report-dir", "", "report output directory (env: REPORT_DIR)")
	rootCmd.PersistentFlags().IntVar(&flagTop, "top", 0, "closeness ranking length (env: TOP_N)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "output format: json|table")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRunsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration: flags take precedence,
// then environment, then ~/.cograph/config.yaml.
func loadConfig() (*config.Config, error) {
	applyConfigFile()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flagInput != "" {
		cfg.InputPath = flagInput
	}

	if flagReportDir != "" {
		cfg.ReportDir = flagReportDir
	}

	if flagTop > 0 {
		cfg.TopN = flagTop
	}

	return cfg, nil
}

// applyConfigFile lifts config-file values into the environment so that
// config.Load sees them as defaults. Existing env vars win.
func applyConfigFile() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	data, err := os.ReadFile(filepath.Join(home, ".cograph", "config.yaml"))
	if err != nil {
		return
	}

	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return
	}

	setEnvDefault("INPUT_PATH", cf.Input)
	setEnvDefault("REPORT_DIR", cf.ReportDir)
	setEnvDefault("DATABASE_URL", cf.DatabaseURL)

	if cf.Top > 0 {
		setEnvDefault("TOP_N", fmt.Sprintf("%d", cf.Top))
	}
}

func setEnvDefault(key, value string) {
	if value == "" {
		return
	}

	if _, set := os.LookupEnv(key); !set {
		os.Setenv(key, value)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	log.SetLevel(lvl)

	return log
}
