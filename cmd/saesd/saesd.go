// Command saesd listens for plaintext connections and answers Simplified AES requests, one per line.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"github.com/codahale/saes/internal/service"
)

func main() {
	var (
		addr    = flag.String("addr", "127.0.0.1:4040", "the address to listen on")
		verbose = flag.Bool("verbose", false, "log every request")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	listenConfig := new(net.ListenConfig)
	listener, err := listenConfig.Listen(ctx, "tcp", *addr)
	if err != nil {
		panic(err)
	}
	log.Info("listening", "addr", listener.Addr())

	if err := service.Serve(ctx, listener, log); err != nil {
		log.Error("failed to accept connection", "err", err)
		os.Exit(1) //nolint:gocritic // stop is only a signal handler
	}
	log.Info("shut down")
}
