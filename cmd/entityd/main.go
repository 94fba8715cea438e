package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/ib-77/outcome/examples/layered/application"
	"github.com/ib-77/outcome/examples/layered/domain"
	"github.com/ib-77/outcome/examples/layered/presentation"
	"github.com/ib-77/outcome/internal/config"
)

var log = logging.Logger("entityd")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.NewApp()
	app.Name = "entityd"
	app.Usage = "serve the layered outcome sample over HTTP"
	app.Commands = []*cli.Command{
		{
			Name:   "serve",
			Usage:  "Start the HTTP server",
			Action: cmdServe,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "config",
					Aliases: []string{"c"},
					Usage:   "Path to a YAML config file",
				},
				&cli.StringFlag{
					Name:  "addr",
					Usage: "Listen address, overrides server.addr",
				},
			},
		},
	}
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("Command failed: %v", err)
	}
}

func cmdServe(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}
	if addr := cctx.String("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	if err := logging.SetLogLevel("*", cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	gin.SetMode(cfg.Server.Mode)

	svc := application.NewService(domain.NewService(domain.NewMemoryRepository(cfg.Entities...)))
	router := presentation.NewRouter(presentation.NewHandler(svc, cfg.Requesters))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", cfg.Server.Addr, "entities", len(cfg.Entities))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-cctx.Context.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
