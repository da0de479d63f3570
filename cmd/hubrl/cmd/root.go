package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hubrl/hubrl"
)

var rootCmd = &cobra.Command{
	Use:   "hubrl",
	Short: "Check Docker Hub pull rate limits",
	Long: "Reports the remaining/total image-pull quota for Docker Hub, " +
		"anonymously or for an account.\n\n" +
		"Note: the check itself consumes one pull, so the reported remaining " +
		"count is one lower than it was before the run.",
	Args:          cobra.NoArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Exit codes, one per failure kind, for scripting.
const (
	exitConnection = 1
	exitParsing    = 2
	exitOverLimit  = 3
	exitAuth       = 4
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch hubrl.KindOf(err) {
	case hubrl.KindParsing:
		return exitParsing
	case hubrl.KindOverLimit:
		return exitOverLimit
	case hubrl.KindAuth:
		return exitAuth
	default:
		return exitConnection
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("username", "u", "", "Docker Hub username (anonymous when unset)")
	rootCmd.Flags().StringP("password", "p", "", "Docker Hub password (prompted for when username is set and password is not)")
	rootCmd.Flags().String("image", hubrl.DefaultImage, "probe image reference")
	rootCmd.Flags().String("token-url", hubrl.DefaultTokenURL, "token endpoint")
	rootCmd.Flags().Duration("timeout", 30*time.Second, "overall deadline for the check")
	rootCmd.Flags().Bool("no-keychain", false, "skip Docker keychain lookup")
	rootCmd.Flags().Bool("insecure", false, "allow plain-HTTP registries")
	rootCmd.Flags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/hubrl/config.yaml)")

	viper.BindPFlag("username", rootCmd.Flags().Lookup("username"))
	viper.BindPFlag("password", rootCmd.Flags().Lookup("password"))
	viper.BindPFlag("image", rootCmd.Flags().Lookup("image"))
	viper.BindPFlag("token_url", rootCmd.Flags().Lookup("token-url"))
	viper.BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("no_keychain", rootCmd.Flags().Lookup("no-keychain"))
	viper.BindPFlag("insecure", rootCmd.Flags().Lookup("insecure"))
	viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("HUBRL")
	viper.AutomaticEnv()

	viper.ReadInConfig()

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hubrl")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "hubrl")
	}
	return ".hubrl"
}
