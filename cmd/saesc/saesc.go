// Command saesc sends Simplified AES requests to a saesd server.
//
// With arguments, it sends them as a single request and prints the result. Without arguments, it writes stdin to the
// server and the server's responses to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/codahale/saes/internal/service"
)

func main() {
	log := slog.New(slog.Default().Handler())

	addr := flag.String("addr", "127.0.0.1:4040", "the address to connect to")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if flag.NArg() > 0 {
		words, err := service.Do(ctx, *addr, strings.Join(flag.Args(), " "))
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[saesc] %v\n", err)
			os.Exit(1) //nolint:gocritic // cancel has nothing left to release
		}
		fmt.Println(strings.Join(words, " "))
		return
	}

	log.InfoContext(ctx, "connecting", "addr", *addr)
	conn, err := new(net.Dialer).DialContext(ctx, "tcp", *addr)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = conn.Close()
		log.Info("closed connection")
	}()

	go func() {
		if _, err := io.Copy(conn, os.Stdin); err != nil {
			log.ErrorContext(ctx, "error reading from stdin", "err", err)
		}
		// Let the server finish answering before the connection is torn down.
		if tcp, ok := conn.(*net.TCPConn); ok {
			_ = tcp.CloseWrite()
		}
	}()
	if _, err := io.Copy(os.Stdout, conn); err != nil && !errors.Is(err, net.ErrClosed) {
		log.ErrorContext(ctx, "error writing to stdout", "err", err)
	}
}
