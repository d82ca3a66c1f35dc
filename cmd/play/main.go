package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	apiURL      string
	dataDir     string
	pageURL     string
	qrOut       string
	searchDelay time.Duration
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("MOVIEGUESSR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "play",
		Short:         "Guess the movie of the day from progressively revealed clues.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&cfg.apiURL, "api-url", "http://localhost:5000", "base URL of the MovieGuessr API (env: MOVIEGUESSR_API_URL)")
	fs.StringVar(&cfg.dataDir, "data-dir", "", "directory for saved sessions, defaults to the user config dir (env: MOVIEGUESSR_DATA_DIR)")
	fs.StringVar(&cfg.pageURL, "page-url", "https://movieguessr.example.com", "URL appended to the share summary (env: MOVIEGUESSR_PAGE_URL)")
	fs.StringVar(&cfg.qrOut, "qr-out", "", "write the share URL as a QR code PNG to this path (env: MOVIEGUESSR_QR_OUT)")
	fs.DurationVar(&cfg.searchDelay, "search-delay", 400*time.Millisecond, "typing pause before a search fires (env: MOVIEGUESSR_SEARCH_DELAY)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	return cmd
}

func main() {
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}
