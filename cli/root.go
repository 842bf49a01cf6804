package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rabinshresthaaa/CoverPage/config"
	"github.com/rabinshresthaaa/CoverPage/pkg/logger"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

// defaultConfigFile is read when --config is not given and the file exists.
const defaultConfigFile = "config.yaml"

var version = "dev"

// commonFlags holds flags shared by every command.
type commonFlags struct {
	config   string
	logLevel string
}

var common commonFlags

var rootCmd = &cobra.Command{
	Use:           "coverpage",
	Short:         "Generate lab report cover pages as .docx documents",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addCommonFlags(rootCmd.PersistentFlags(), &common)
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "path to the YAML config file (default ./config.yaml when present)")
	fs.StringVar(&f.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configured file and installs the logger on the
// command's error stream.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := common.config
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if common.logLevel != "" {
		cfg.Log.Level = common.logLevel
	}

	logger.Init(cmd.ErrOrStderr(), &logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if path != "" {
		logger.Debug(contextOrBackground(cmd), "configuration loaded", "path", path)
	}
	return cfg, nil
}
