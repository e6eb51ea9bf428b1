package redis

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("connects and pings a live server", func(t *testing.T) {
		srv := miniredis.RunT(t)

		host, port, ok := strings.Cut(srv.Addr(), ":")
		if !ok {
			t.Fatalf("unexpected miniredis address: %q", srv.Addr())
		}

		rdb, err := NewRedisClient(Config{Host: host, Port: port})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rdb.Close()

		if err := rdb.Set(context.Background(), "k", "v", 0).Err(); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		got, err := srv.Get("k")
		if err != nil || got != "v" {
			t.Errorf("expected k=v in the server, got %q (%v)", got, err)
		}
	})

	t.Run("authenticates with a password", func(t *testing.T) {
		srv := miniredis.RunT(t)
		srv.RequireAuth("secret")

		host, port, _ := strings.Cut(srv.Addr(), ":")

		if _, err := NewRedisClient(Config{Host: host, Port: port}); err == nil {
			t.Error("expected an auth error without a password")
		}

		rdb, err := NewRedisClient(Config{Host: host, Port: port, Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error with the right password: %v", err)
		}
		rdb.Close()
	})

	t.Run("fails fast on an unreachable server", func(t *testing.T) {
		if _, err := NewRedisClient(Config{Host: "127.0.0.1", Port: "1"}); err == nil {
			t.Error("expected a connection error")
		}
	})
}
