package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-insight/internal/compare"
	"github.com/spigell/resume-insight/internal/l10n"
	"github.com/spigell/resume-insight/internal/logger"
)

const (
	app = "resume-insight"
)

type Config struct {
	Locale       string         `mapstructure:"locale"`
	Compare      *CompareConfig `mapstructure:"compare"`
	SavedFile    string         `mapstructure:"saved-file"`
	ShareBaseURL string         `mapstructure:"share-base-url"`
}

type CompareConfig struct {
	compare.Range       `mapstructure:",squash"`
	Sort                string   `mapstructure:"sort"`
	Order               string   `mapstructure:"order"`
	MinExperienceMonths int      `mapstructure:"min-experience-months"`
	RequiredSkills      []string `mapstructure:"required-skills"`
	Output              string   `mapstructure:"output"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-insight compares resumes matched against a vacancy and renders values for en and ru locales",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("locale", "RESUME_INSIGHT_LOCALE"); err != nil {
		log.Fatalf("binding RESUME_INSIGHT_LOCALE environment variable: %v", err)
	}

	setDefaults()
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-insight.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("locale", "l", "", "output locale: en or ru")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
}

func setDefaults() {
	viper.SetDefault("locale", string(l10n.English))
	viper.SetDefault("compare.min-match", 0)
	viper.SetDefault("compare.max-match", 100)
	viper.SetDefault("compare.sort", string(compare.DefaultSortKey))
	viper.SetDefault("compare.order", string(compare.DefaultDirection))
	viper.SetDefault("compare.output", "text")
	viper.SetDefault("saved-file", "comparisons.json")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Compare == nil {
		config.Compare = &CompareConfig{Range: compare.DefaultRange()}
	}

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func currentLocale() (l10n.Locale, error) {
	return l10n.ParseLocale(viper.GetString("locale"))
}
