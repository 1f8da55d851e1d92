// Package service answers Simplified AES requests over a line-oriented text protocol.
//
// Each request is one line: "encrypt <key> <block>", "decrypt <key> <block>" or "expand <key>", with words written as
// 0x-prefixed hex or binary. Each response is one line: "ok" followed by the result words in hex, or "err" followed by
// a message.
package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"

	"github.com/codahale/saes"
	"github.com/codahale/saes/internal/word"
)

// MaxLineLength is the longest request line the service reads.
const MaxLineLength = 256

// Handle answers a single request line.
func Handle(line string) string {
	resp, err := handle(strings.Fields(line))
	if err != nil {
		return "err " + err.Error()
	}
	return "ok " + resp
}

func handle(fields []string) (string, error) {
	if len(fields) == 0 {
		return "", errors.New("empty request")
	}

	op, args := strings.ToLower(fields[0]), fields[1:]
	switch op {
	case "encrypt", "decrypt":
		if len(args) != 2 {
			return "", fmt.Errorf("%s takes a key and a block, got %d arguments", op, len(args))
		}

		key, err := word.Parse(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid key: %w", err)
		}

		block, err := word.Parse(args[1])
		if err != nil {
			return "", fmt.Errorf("invalid block: %w", err)
		}

		rk := saes.Expand(key)
		if op == "decrypt" {
			return word.Hex(saes.Decrypt(block, rk)), nil
		}
		return word.Hex(saes.Encrypt(block, rk)), nil
	case "expand":
		if len(args) != 1 {
			return "", fmt.Errorf("expand takes a key, got %d arguments", len(args))
		}

		key, err := word.Parse(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid key: %w", err)
		}

		rk := saes.Expand(key)
		return word.Hex(rk[0]) + " " + word.Hex(rk[1]) + " " + word.Hex(rk[2]), nil
	default:
		return "", fmt.Errorf("unknown operation %q", fields[0])
	}
}

// Serve accepts connections on l and answers requests on each until ctx is cancelled or l fails. It closes l and
// every open connection before returning, and returns nil if it stopped because ctx was cancelled.
func Serve(ctx context.Context, l net.Listener, log *slog.Logger) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = l.Close()
	}()

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		wg.Go(func() {
			ServeConn(ctx, conn, log)
		})
	}
}

// ServeConn answers requests on conn until the peer hangs up, a line is too long or ctx is cancelled, then closes conn.
func ServeConn(ctx context.Context, conn net.Conn, log *slog.Logger) {
	log = log.With("addr", conn.RemoteAddr())
	log.Info("accepted new connection")

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer func() {
		stop()
		_ = conn.Close()
		log.Info("closed connection")
	}()

	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, MaxLineLength), MaxLineLength)
	for sc.Scan() {
		resp := Handle(sc.Text())
		log.Debug("handled request", "request", sc.Text(), "response", resp)

		if _, err := conn.Write([]byte(resp + "\n")); err != nil {
			log.Error("error writing response", "err", err)
			return
		}
	}

	if err := sc.Err(); err != nil && ctx.Err() == nil && !errors.Is(err, net.ErrClosed) {
		log.Error("error reading request", "err", err)
	}
}

// RemoteError is an "err" response from the service.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "saes/service: " + e.Message
}

// Do sends a single request line to the service at addr and returns the words of an "ok" response.
func Do(ctx context.Context, addr, request string) ([]string, error) {
	if strings.ContainsAny(request, "\r\n") {
		return nil, errors.New("saes/service: request spans more than one line")
	}

	conn, err := new(net.Dialer).DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = conn.Close()
	}()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	if _, err := conn.Write([]byte(request + "\n")); err != nil {
		return nil, err
	}

	resp, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("saes/service: reading response: %w", err)
	}

	status, rest, _ := strings.Cut(strings.TrimSpace(resp), " ")
	switch status {
	case "ok":
		return strings.Fields(rest), nil
	case "err":
		return nil, &RemoteError{Message: rest}
	default:
		return nil, fmt.Errorf("saes/service: malformed response %q", resp)
	}
}
