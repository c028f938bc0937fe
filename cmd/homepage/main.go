package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/homepage"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "homepage",
	Short: "A personal website with a markdown blog",
	Long: `homepage serves a handful of static pages and a blog whose posts are
markdown files compiled into the binary, with filtering by category, series
and author.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the homepage version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "homepage %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.AddCommand(serveCmd, postsCmd, renderCmd, newCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration with precedence defaults < file < env.
// Environment variables use the HOMEPAGE_ prefix (HOMEPAGE_URL, HOMEPAGE_ADDR).
func loadConfig() (homepage.SiteConfig, error) {
	v := viper.New()

	v.SetDefault("name", "Home")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("email", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("content_dir", "")
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("HOMEPAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return homepage.SiteConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg homepage.SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return homepage.SiteConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// openStore loads posts from cfg.ContentDir, or the embedded posts.
func openStore(cfg homepage.SiteConfig) (*homepage.Store, error) {
	var content fs.FS
	if cfg.ContentDir != "" {
		content = os.DirFS(cfg.ContentDir)
	}
	return homepage.OpenStore(content)
}
