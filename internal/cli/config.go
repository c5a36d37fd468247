package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quickgraph/quickgraph/pkg/viewer"
)

// envHost overrides the configured viewer host.
const envHost = "QUICKGRAPH_HOST"

// Host sources, reported by the config command and debug logs.
const (
	sourceFlag    = "flag"
	sourceEnv     = "env"
	sourceFile    = "config"
	sourceDefault = "default"
)

// Config is the on-disk configuration.
//
//	# ~/.config/quickgraph/config.toml
//	host = "localhost:8080"
type Config struct {
	Host string `toml:"host"`
}

// configPath returns the config file path using XDG conventions
// (~/.config/quickgraph/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path. A missing file yields a zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// loadDotEnv loads .env from the working directory into the environment.
// Variables already set are not overridden.
func loadDotEnv(l *log.Logger) {
	if err := godotenv.Load(); err != nil {
		l.Debug("No .env file found, using system environment variables")
	}
}

// resolveHost picks the viewer host: flag, then QUICKGRAPH_HOST, then the
// config file, then [viewer.DefaultHost].
func resolveHost(flagHost string) (host, source string, err error) {
	if flagHost != "" {
		return flagHost, sourceFlag, nil
	}
	if env, ok := os.LookupEnv(envHost); ok && env != "" {
		return env, sourceEnv, nil
	}
	path, err := configPath()
	if err != nil {
		return viewer.DefaultHost, sourceDefault, nil
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return "", "", err
	}
	if cfg.Host != "" {
		return cfg.Host, sourceFile, nil
	}
	return viewer.DefaultHost, sourceDefault, nil
}

// configCommand creates the "config" command showing the resolved settings.
func (c *CLI) configCommand() *cobra.Command {
	var host string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved viewer host and config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.OutOrStdout(), host)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "viewer service host (overrides "+envHost+" and config file)")

	return cmd
}

func runConfig(w io.Writer, flagHost string) error {
	host, source, err := resolveHost(flagHost)
	if err != nil {
		return err
	}
	path, err := configPath()
	if err != nil {
		path = "(unavailable)"
	}
	printKeyValue(w, "host", host)
	printKeyValue(w, "source", source)
	printKeyValue(w, "config", path)
	return nil
}
