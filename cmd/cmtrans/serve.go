package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/phyten/cmtrans/internal/translate"
	"github.com/phyten/cmtrans/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, _ := cmd.Flags().GetString("host")
			port, _ := cmd.Flags().GetInt("port")
			if port < 0 || port > 65535 {
				return usageError(fmt.Errorf("invalid port: %d", port))
			}
			ln, err := net.Listen("tcp", net.JoinHostPort(host, fmt.Sprint(port)))
			if err != nil {
				return errors.Wrap(err, "listen")
			}
			return a.serve(cmd.Context(), ln)
		},
	}
	cmd.Flags().IntP("port", "p", 8080, "port")
	cmd.Flags().String("host", "127.0.0.1", "interface to bind")
	return cmd
}

// serve runs the web server on ln until ctx is done.
func (a *app) serve(ctx context.Context, ln net.Listener) error {
	site, _ := translate.ParseSite(a.translate.Site)
	srv := &http.Server{
		Handler: web.New(a.logger, a.opts, web.Translate{
			Site:   site,
			Source: a.translate.Source,
			Target: a.translate.Target,
		}).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	_ = level.Info(a.logger).Log("msg", "cmtrans serve listening", "addr", "http://"+ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
