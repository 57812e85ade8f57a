package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/okian/studytrack/internal/domain/correlation"
	"github.com/redis/go-redis/v9"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGateLive(t *testing.T) {
	addr := os.Getenv("STUDYTRACK_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STUDYTRACK_TEST_REDIS_ADDR not set")
	}

	Convey("Given a gate on a live Redis", t, func() {
		ctx := context.Background()
		key := "studytrack:test:" + uuid.NewString()
		g, err := New(ctx, Config{Addr: addr, Key: key, TTL: time.Minute})
		So(err, ShouldBeNil)
		defer g.Close()
		defer g.Invalidate(ctx)

		sig := correlation.Signature{Count: 10, Newest: 1700000000}

		Convey("The first call recomputes and a repeat does not", func() {
			So(g.ShouldRecompute(ctx, sig), ShouldBeTrue)
			So(g.ShouldRecompute(ctx, sig), ShouldBeFalse)
		})

		Convey("A changed signature recomputes", func() {
			So(g.ShouldRecompute(ctx, sig), ShouldBeTrue)
			So(g.ShouldRecompute(ctx, correlation.Signature{Count: 11, Newest: sig.Newest}), ShouldBeTrue)
		})

		Convey("Invalidate forces the next recompute", func() {
			So(g.ShouldRecompute(ctx, sig), ShouldBeTrue)
			g.Invalidate(ctx)
			So(g.ShouldRecompute(ctx, sig), ShouldBeTrue)
		})

		Convey("Two gates on one key share the signature", func() {
			other := NewWithClient(g.client, key, time.Minute)
			So(g.ShouldRecompute(ctx, sig), ShouldBeTrue)
			So(other.ShouldRecompute(ctx, sig), ShouldBeFalse)
		})
	})
}

func TestGateUnreachable(t *testing.T) {
	Convey("Given a gate whose server is unreachable", t, func() {
		ctx := context.Background()
		client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
		g := NewWithClient(client, "", 0)
		defer g.Close()

		Convey("It always asks for a recompute", func() {
			sig := correlation.Signature{Count: 1, Newest: 1}
			So(g.key, ShouldEqual, DefaultKey)
			So(g.ShouldRecompute(ctx, sig), ShouldBeTrue)
			So(g.ShouldRecompute(ctx, sig), ShouldBeTrue)
			So(func() { g.Invalidate(ctx) }, ShouldNotPanic)
		})

		Convey("New reports the failed ping", func() {
			_, err := New(ctx, Config{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
			So(err, ShouldNotBeNil)
			_, err = New(ctx, Config{})
			So(err, ShouldNotBeNil)
		})
	})
}
