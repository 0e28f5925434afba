package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextFieldsSurviveAcrossLayers(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: buf})

	ctx := context.Background()
	ctx = log.WithRequestID(ctx, "req-123")
	ctx = log.WithUserID(ctx, "user-9")

	log.Info(ctx, "hello")

	if !bytes.Contains(buf.Bytes(), []byte(`"request_id":"req-123"`)) {
		t.Fatalf("expected request_id in entry: %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"user_id":"user-9"`)) {
		t.Fatalf("expected user_id in entry: %s", buf.String())
	}
}

func TestErrorIncludesCauseAndStack(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Output: buf})

	log.Error(context.Background(), "boom", errors.New("kaput"))

	if !bytes.Contains(buf.Bytes(), []byte(`"error":"kaput"`)) {
		t.Fatalf("expected cause in entry: %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"stack"`)) {
		t.Fatalf("expected stack in entry: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if lvl := ParseLevel("warn"); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn, got %v", lvl)
	}
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %v", lvl)
	}
	if lvl := ParseLevel("nonsense"); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info fallback for junk, got %v", lvl)
	}
}
