package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/nuggetscustoms/site/auth"
	"github.com/nuggetscustoms/site/contact"
	"github.com/nuggetscustoms/site/internal/config"
	"github.com/nuggetscustoms/site/server"
	"github.com/nuggetscustoms/site/sessions"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site, the portal and the API",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	return run(cmd.Context(), a.config)
}

func run(ctx context.Context, c config.Config) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()
	displayAppname(c.GetAppName())

	orderRepo, closeOrders, err := openOrders(c)
	if err != nil {
		return err
	}
	defer closeOrders()

	authService, err := auth.NewAuthorizationService(sessions.NewInMemoryRepo(), c)
	if err != nil {
		return err
	}

	siteFolder := c.GetSiteFolder()
	if info, err := os.Stat(siteFolder); err != nil || !info.IsDir() {
		log.Warn().Str("folder", siteFolder).Msg("Site folder not found, pages will 404")
	}

	handler, err := server.New(c, server.Services{
		Auth:     authService,
		Orders:   orderRepo,
		Notifier: contact.NewWebhookNotifier(c.GetDiscordWebhookURL(), c.GetWebhookTimeout()),
		Site:     os.DirFS(siteFolder),
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              c.GetPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go sweepSessions(sweepCtx, authService, c.GetSessionSweepInterval())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- listenAndServe(httpServer)
	}()

	if err := waitForStopSignal(ctx, serveErr); err != nil {
		return err
	}
	returnError = shutdown(httpServer)
	log.Info().Msg("Server stopped")
	return returnError
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

// waitForStopSignal blocks until SIGINT/SIGTERM, ctx cancellation or the
// server failing to serve.
func waitForStopSignal(ctx context.Context, serveErr <-chan error) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		return nil
	case <-ctx.Done():
		return nil
	case err := <-serveErr:
		return err
	}
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

// sweepSessions purges sessions past the max age until ctx is done.
func sweepSessions(ctx context.Context, authService *auth.AuthorizationService, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := authService.SweepExpired(); removed > 0 {
				log.Debug().Int("removed", removed).Msg("Swept expired sessions")
			}
		}
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
