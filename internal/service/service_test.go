package service_test

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/codahale/saes/internal/service"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		req, resp string
	}{
		{req: "encrypt 0xA73B 0x6F6B", resp: "ok 0x0738"},
		{req: "ENCRYPT 1010011100111011 0110111101101011", resp: "ok 0x0738"},
		{req: "  decrypt   0xA73B   0x0738  ", resp: "ok 0x6F6B"},
		{req: "expand 0xA73B", resp: "ok 0xA73B 0x1C27 0x7651"},
		{req: "", resp: "err empty request"},
		{req: "sign 0x1", resp: `err unknown operation "sign"`},
		{req: "encrypt 0xA73B", resp: "err encrypt takes a key and a block, got 1 arguments"},
		{req: "expand", resp: "err expand takes a key, got 0 arguments"},
		{req: "encrypt 0xZZ 0x6F6B", resp: `err invalid key: saes/word: "0xZZ" is not a valid hexadecimal number`},
		{req: "decrypt 0xA73B 0x10000", resp: `err invalid block: saes/word: "0x10000" does not fit in 16 bits`},
		{req: "expand 0x", resp: "err invalid key: saes/word: no digits"},
	} {
		require.Equal(t, test.resp, service.Handle(test.req), "Handle(%q)", test.req)
	}
}

func TestServeConn(t *testing.T) {
	t.Parallel()

	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		service.ServeConn(t.Context(), server, slog.New(slog.NewTextHandler(io.Discard, nil)))
		close(done)
	}()

	r := bufio.NewReader(client)
	for req, want := range map[string]string{
		"encrypt 0xA73B 0x6F6B": "ok 0x0738\n",
		"decrypt 0x4AF5 0xF4B1": "ok 0x1234\n",
		"bogus":                 "err unknown operation \"bogus\"\n",
	} {
		_, err := client.Write([]byte(req + "\n"))
		require.NoError(t, err)

		resp, err := r.ReadString('\n')
		require.NoError(t, err)
		require.Equal(t, want, resp)
	}

	require.NoError(t, client.Close())
	<-done
}

func TestServeConnLongLine(t *testing.T) {
	t.Parallel()

	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		service.ServeConn(t.Context(), server, slog.New(slog.NewTextHandler(io.Discard, nil)))
		close(done)
	}()

	go func() {
		_, _ = client.Write([]byte(strings.Repeat("0", service.MaxLineLength+1) + "\n"))
	}()

	<-done
	_, err := client.Read(make([]byte, 1))
	require.Error(t, err, "connection still open after an overlong line")
}

func TestServe(t *testing.T) {
	t.Parallel()

	l, err := new(net.ListenConfig).Listen(t.Context(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	served := make(chan error, 1)
	go func() {
		served <- service.Serve(ctx, l, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			conn, err := new(net.Dialer).DialContext(ctx, "tcp", l.Addr().String())
			if err != nil {
				t.Error(err)
				return
			}
			defer func() { _ = conn.Close() }()

			r := bufio.NewReader(conn)
			for range 50 {
				if _, err := conn.Write([]byte("encrypt 0x4AF5 0x1234\n")); err != nil {
					t.Error(err)
					return
				}

				resp, err := r.ReadString('\n')
				if err != nil {
					t.Error(err)
					return
				}

				if resp != "ok 0xF4B1\n" {
					t.Errorf("response = %q, want = %q", resp, "ok 0xF4B1\n")
					return
				}
			}
		})
	}
	wg.Wait()

	// An idle connection must not keep Serve from returning.
	idle, err := new(net.Dialer).DialContext(t.Context(), "tcp", l.Addr().String())
	require.NoError(t, err)
	defer func() { _ = idle.Close() }()

	cancel()
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestDo(t *testing.T) {
	t.Parallel()

	l, err := new(net.ListenConfig).Listen(t.Context(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	go func() {
		_ = service.Serve(ctx, l, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	words, err := service.Do(ctx, l.Addr().String(), "expand 0xA73B")
	require.NoError(t, err)
	require.Equal(t, []string{"0xA73B", "0x1C27", "0x7651"}, words)

	words, err = service.Do(ctx, l.Addr().String(), "decrypt 0xA73B 0x0738")
	require.NoError(t, err)
	require.Equal(t, []string{"0x6F6B"}, words)

	_, err = service.Do(ctx, l.Addr().String(), "encrypt 0xA73B")
	var re *service.RemoteError
	require.ErrorAs(t, err, &re)
	require.Equal(t, "encrypt takes a key and a block, got 1 arguments", re.Message)

	_, err = service.Do(ctx, l.Addr().String(), "expand 0x1\nexpand 0x2")
	require.ErrorContains(t, err, "more than one line")
}
