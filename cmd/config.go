package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/config"
	"github.com/derickschaefer/chartspec/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chartspec configuration",
	Long: `Read and write chartspec configuration stored in chartspec.toml.

Values resolve in this order, first one set wins:
  1. flags (--format, --db)
  2. environment (CHARTSPEC_FORMAT, CHARTSPEC_DB_PATH)
  3. chartspec.toml in the current directory`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a template chartspec.toml in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigFile
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (delete it first to re-initialise)", path)
		}
		if err := config.WriteFile(path, config.Template()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)
		return nil
	},
}

var configGetReport string

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(globalFlags.Format, globalFlags.DB)
		if err != nil {
			return err
		}

		src := "(not found)"
		if cfg.ConfigPath != "" {
			src = cfg.ConfigPath
		}

		if configGetReport == render.FormatJSON {
			type configOut struct {
				Format        string `json:"default_format"`
				DBPath        string `json:"db_path"`
				Indent        int    `json:"indent"`
				WatchInterval string `json:"watch_interval"`
				Concurrency   int    `json:"concurrency"`
				ConfigFile    string `json:"config_file"`
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(configOut{
				Format:        cfg.Format,
				DBPath:        cfg.DBPath,
				Indent:        cfg.Indent,
				WatchInterval: cfg.WatchInterval.String(),
				Concurrency:   cfg.Concurrency,
				ConfigFile:    src,
			})
		}

		printKVTable(cmd.OutOrStdout(), [][]string{
			{"default_format", cfg.Format},
			{"db_path", cfg.DBPath},
			{"indent", fmt.Sprintf("%d", cfg.Indent)},
			{"watch_interval", cfg.WatchInterval.String()},
			{"concurrency", fmt.Sprintf("%d", cfg.Concurrency)},
			{"config_file", src},
		})
		return nil
	},
}

// configKeys are the keys config set accepts.
var configKeys = []string{"default_format", "db_path", "indent", "watch_interval", "concurrency"}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in chartspec.toml",
	Example: `  chartspec config set default_format yaml
  chartspec config set watch_interval 1s`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.ToLower(args[0])
		val := args[1]

		// Load existing file or start from template
		f, path, err := loadConfigFile()
		if err != nil {
			if !os.IsNotExist(err) {
				return err
			}
			path = config.DefaultConfigFile
			f = config.Template()
		}

		switch key {
		case "default_format", "format":
			if !config.ValidFormat(val) {
				return fmt.Errorf("unknown format %q (expected one of %s)", val, strings.Join(config.Formats, ", "))
			}
			f.DefaultFormat = val
		case "db_path":
			f.DBPath = val
		case "indent":
			n, err := parseIntID(val, "indent")
			if err != nil || n > 8 {
				return fmt.Errorf("indent must be an integer between 0 and 8")
			}
			f.Indent = n
		case "watch_interval":
			if d, err := time.ParseDuration(val); err != nil || d <= 0 {
				return fmt.Errorf("watch_interval must be a positive duration such as 500ms")
			}
			f.WatchInterval = val
		case "concurrency":
			n, err := parseIntID(val, "concurrency")
			if err != nil || n == 0 {
				return fmt.Errorf("concurrency must be a positive integer")
			}
			f.Concurrency = n
		default:
			return fmt.Errorf("unknown config key: %q\n\nValid keys: %s", key, strings.Join(configKeys, ", "))
		}

		if err := config.WriteFile(path, f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s in %s\n", key, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configGetCmd.Flags().StringVar(&configGetReport, "report", "", "output: table|json (default: table)")
	_ = configGetCmd.RegisterFlagCompletionFunc("report", fixedValues(render.FormatTable, render.FormatJSON))
}

// loadConfigFile reads chartspec.toml from cwd; used by configSetCmd.
func loadConfigFile() (config.File, string, error) {
	path := config.DefaultConfigFile
	var f config.File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return config.File{}, "", err
	}
	return f, path, nil
}
