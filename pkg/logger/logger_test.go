package logger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Init installs a global logger", t, func() {
		So(Init(), ShouldBeNil)
		So(Get(), ShouldNotBeNil)
		So(Sync(), ShouldBeNil)
	})

	Convey("InitWithWriter rejects a nil writer", t, func() {
		So(InitWithWriter(nil), ShouldNotBeNil)
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("Fields are rendered as key=value pairs", func() {
			Get().Info(ctx, "recompute finished",
				String("outcome", "recomputed"),
				Int("records", 36),
				Bool("cached", false),
				Duration("took", 1500*time.Millisecond),
				Error(errors.New("boom")),
			)
			out := buf.String()
			So(out, ShouldContainSubstring, "recompute finished")
			So(out, ShouldContainSubstring, "outcome=recomputed")
			So(out, ShouldContainSubstring, "records=36")
			So(out, ShouldContainSubstring, "cached=false")
			So(out, ShouldContainSubstring, "took=1.5s")
			So(out, ShouldContainSubstring, "error=boom")
			So(out, ShouldContainSubstring, "source=")
		})

		Convey("Named loggers group their fields", func() {
			Named("correlation").Warn(ctx, "predictor failed", String("assessment", "a1"))
			So(buf.String(), ShouldContainSubstring, "correlation.assessment=a1")
		})

		Convey("Debug is suppressed until the level is lowered", func() {
			Get().Debug(ctx, "hidden")
			So(buf.String(), ShouldNotContainSubstring, "hidden")

			So(SetLevelString("debug"), ShouldBeNil)
			Get().Debug(ctx, "visible")
			So(buf.String(), ShouldContainSubstring, "visible")
		})

		Convey("Fatal logs and exits with status 1", func() {
			code := 0
			exit = func(c int) { code = c }
			defer func() { exit = os.Exit }()

			Get().Fatal(ctx, "cannot continue")
			So(code, ShouldEqual, 1)
			So(buf.String(), ShouldContainSubstring, "level=ERROR")
		})

		Convey("The source is the calling file", func() {
			Get().Info(ctx, "where")
			So(buf.String(), ShouldContainSubstring, "logger_test.go:")
		})

		Convey("Unknown levels are rejected", func() {
			So(SetLevelString("loud"), ShouldNotBeNil)
			So(SetLevelString("WARNING"), ShouldBeNil)
		})
	})
}

func TestNop(t *testing.T) {
	Convey("Nop discards everything without panicking", t, func() {
		l := Nop()
		So(func() { l.Named("x").Error(context.Background(), "dropped") }, ShouldNotPanic)
	})
}
