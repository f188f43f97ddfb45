package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Stewinjo/AnyLetters/internal/daily"
	"github.com/Stewinjo/AnyLetters/internal/db"
	"github.com/Stewinjo/AnyLetters/internal/httpserver"
	"github.com/Stewinjo/AnyLetters/internal/players"
	"github.com/Stewinjo/AnyLetters/internal/store"
)

func (a *app) serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve games, word checks and the daily challenge over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Server.Port = port
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (default: $PORT or 5175)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	sess, err := a.session(nil)
	if err != nil {
		return err
	}
	conn, err := db.OpenAndMigrate(a.cfg.Server.DSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	srv := httpserver.New(httpserver.Options{
		Session:       sess,
		Games:         store.NewMemoryStore(),
		Players:       players.NewStore(conn),
		Daily:         daily.NewStore(conn),
		Issuer:        players.NewIssuer(a.cfg.Server.JWTSecret, a.cfg.Server.TokenTTL),
		DictRoot:      a.cfg.Paths.Dictionaries,
		ClientOrigin:  a.cfg.Server.ClientOrigin,
		CookieName:    a.cfg.Server.CookieName,
		SecureCookies: os.Getenv("NODE_ENV") == "production",
		DailySalt:     a.cfg.Daily.Salt,
		GameTTL:       a.cfg.Server.GameTTL,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("port", a.cfg.Server.Port).Str("dictionaries", a.cfg.Paths.Dictionaries).Msg("starting server")
	return srv.Start(ctx, ":"+a.cfg.Server.Port)
}
