package repo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ctxWithBuffer() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return l.WithContext(context.Background()), &buf
}

func TestGormLogger_Trace(t *testing.T) {
	fc := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("error logged", func(t *testing.T) {
		ctx, buf := ctxWithBuffer()
		NewGormLogger(0).Trace(ctx, time.Now(), fc, errors.New("boom"))
		if !strings.Contains(buf.String(), `"query failed"`) || !strings.Contains(buf.String(), "SELECT 1") {
			t.Fatalf("unexpected log: %s", buf.String())
		}
	})
	t.Run("record not found ignored", func(t *testing.T) {
		ctx, buf := ctxWithBuffer()
		NewGormLogger(0).Trace(ctx, time.Now(), fc, gorm.ErrRecordNotFound)
		if buf.Len() != 0 {
			t.Fatalf("expected no log, got %s", buf.String())
		}
	})
	t.Run("slow query warned", func(t *testing.T) {
		ctx, buf := ctxWithBuffer()
		NewGormLogger(time.Millisecond).Trace(ctx, time.Now().Add(-time.Second), fc, nil)
		if !strings.Contains(buf.String(), `"slow query"`) {
			t.Fatalf("unexpected log: %s", buf.String())
		}
	})
	t.Run("fast query quiet at warn", func(t *testing.T) {
		ctx, buf := ctxWithBuffer()
		NewGormLogger(time.Hour).Trace(ctx, time.Now(), fc, nil)
		if buf.Len() != 0 {
			t.Fatalf("expected no log, got %s", buf.String())
		}
	})
	t.Run("info mode logs every query", func(t *testing.T) {
		ctx, buf := ctxWithBuffer()
		NewGormLogger(time.Hour).LogMode(logger.Info).Trace(ctx, time.Now(), fc, nil)
		if !strings.Contains(buf.String(), `"query"`) {
			t.Fatalf("unexpected log: %s", buf.String())
		}
	})
	t.Run("silent", func(t *testing.T) {
		ctx, buf := ctxWithBuffer()
		NewGormLogger(0).LogMode(logger.Silent).Trace(ctx, time.Now(), fc, errors.New("boom"))
		if buf.Len() != 0 {
			t.Fatalf("expected no log, got %s", buf.String())
		}
	})
}

func TestGormLogger_Messages(t *testing.T) {
	ctx, buf := ctxWithBuffer()
	l := NewGormLogger(0)
	l.Info(ctx, "hidden %d", 1) // below default warn level
	l.Warn(ctx, "careful %s", "now")
	l.Error(ctx, "broken %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "careful now") || !strings.Contains(out, "broken 2") {
		t.Fatalf("unexpected log: %s", out)
	}
}
