// Package cli implements bridgectl, a command line front end to the bridges
// for curators and scripts.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bridges/internal/cache"
	"bridges/internal/config"
	"bridges/internal/httpclient"
	"bridges/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// session is built once per invocation from the environment.
type session struct {
	cfg     *config.AppConfig
	format  string
	noColor bool
	lookups cache.Cache
}

func newRootCmd() *cobra.Command {
	s := &session{}

	cmd := &cobra.Command{
		Use:           "bridgectl",
		Short:         "Query the remote bioinformatics services behind the bridges",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			s.cfg = config.Load()
			if s.noColor {
				color.NoColor = true
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if s.lookups != nil {
				return s.lookups.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&s.format, "format", "pretty", "Output format: pretty|json")
	cmd.PersistentFlags().BoolVar(&s.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		blastCmd(s),
		pubmedCmd(s),
		imexCmd(s),
		olsCmd(s),
		taxonomyCmd(s),
		uniprotCmd(s),
		unisaveCmd(s),
		picrCmd(s),
		oboCmd(s),
	)
	return cmd
}

// client builds the HTTP client of one bridge. Metrics are not collected
// for one-shot commands.
func (s *session) client(name, baseURL string) *httpclient.Client {
	hc := httpclient.DefaultConfig()
	hc.Timeout = s.cfg.Bridges.HTTPTimeout
	hc.Tracing = false
	return httpclient.NewClient(name, baseURL,
		httpclient.WithHTTPClient(httpclient.New(hc)),
		httpclient.WithUserAgent(s.cfg.Bridges.UserAgent),
	)
}

// cache opens the configured lookup cache on first use. A cache that cannot
// be opened is skipped; lookups still work uncached.
func (s *session) cache() (cache.Cache, time.Duration) {
	if s.lookups == nil {
		c, err := cache.Open(cache.Config{Backend: s.cfg.Cache.Backend, Path: s.cfg.Cache.Path, MaxBytes: s.cfg.Cache.MaxBytes})
		if err != nil {
			c = cache.Nop{}
		}
		s.lookups = c
	}
	return s.lookups, s.cfg.Cache.TTL
}

// log writes JSON lines to stderr so stdout stays machine readable.
func (s *session) log() *logrus.Logger {
	return logger.New(logger.Config{Level: s.cfg.LogLevel, Location: s.cfg.Location(), Output: os.Stderr})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
