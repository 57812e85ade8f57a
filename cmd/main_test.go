package main

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

// run executes the CLI with args and returns what it printed.
func run(ctx context.Context, t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func cleanEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"STUDYTRACK_CONFIG", "STUDYTRACK_STORAGE", "STUDYTRACK_CACHE", "STUDYTRACK_ADDR"} {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}
}

func TestCommands(t *testing.T) {
	convey.Convey("Given the studytrack CLI on in-memory backends", t, func() {
		cleanEnv(t)
		ctx := context.Background()

		convey.Convey("seed stores a population and recomputes", func() {
			out, err := run(ctx, t, "seed", "--population", "30", "--random", "42", "--workers", "3")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "Seeded 30 students (random=42)")
			convey.So(out, convey.ShouldContainSubstring, "Outcome: recomputed")
		})

		convey.Convey("recompute over an empty store is insufficient", func() {
			out, err := run(ctx, t, "recompute")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "Outcome:     insufficient")
			convey.So(out, convey.ShouldContainSubstring, "No correlations pass the filter.")
		})

		convey.Convey("career --list prints the catalog", func() {
			out, err := run(ctx, t, "career", "--list")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "software-developer")
			convey.So(out, convey.ShouldContainSubstring, "Cybersecurity Specialist")
		})

		convey.Convey("career needs a user", func() {
			_, err := run(ctx, t, "career", "--career", "doctor")
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "--user")

			_, err = run(ctx, t, "career", "--user", "nobody", "--sim", "study_hours=10")
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("recommend requires --user", func() {
			_, err := run(ctx, t, "recommend")
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("an invalid configuration stops every command", func() {
			t.Setenv("STUDYTRACK_STORAGE", "sqlite")
			_, err := run(ctx, t, "recompute")
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "invalid config")
		})

		convey.Convey("--config names the YAML file", func() {
			_, err := run(ctx, t, "--config", "/non/existent/studytrack.yaml", "career", "--list")
			convey.So(err, convey.ShouldNotBeNil)

			out, err := run(ctx, t, "--config", "../configs/studytrack.yaml", "career", "--list")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "engineer")
		})
	})
}

func TestServe(t *testing.T) {
	convey.Convey("serve shuts down when its context ends", t, func() {
		cleanEnv(t)
		t.Setenv("STUDYTRACK_ADDR", "127.0.0.1:0")
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		_, err := run(ctx, t, "serve", "--seed")
		convey.So(err, convey.ShouldBeNil)
	})
}

func TestSystemMetrics(t *testing.T) {
	convey.Convey("The system metrics updater", t, func() {
		convey.So(updateSystemMetrics, convey.ShouldNotPanic)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		done := make(chan struct{})
		go func() {
			startSystemMetricsUpdater(ctx)
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("updater did not stop")
		}
	})
}
