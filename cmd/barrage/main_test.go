package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestDurationCmd(t *testing.T) {
	out, err := execute(t, "duration", "500ms", "1000000us")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "500ms\t500ms\t500000000ns\n1000000us\t1s\t1000000000ns\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestDurationCmd_Invalid(t *testing.T) {
	_, err := execute(t, "duration", "ms500")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "cannot parse to duration value") {
		t.Errorf("error %q lacks context", err)
	}
}

func TestRunCmd_Count(t *testing.T) {
	out, err := execute(t, "run", "--every", "1ms", "--data", `{"a": [1, 2]}`, "--count", "3")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := strings.Repeat(`{"a":[1,2]}`+"\n", 3)
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(out, "cancelled") {
		t.Errorf("run that reached --count printed cancelled:\n%s", out)
	}
}

func TestRunCmd_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(20*time.Millisecond, cancel)

	out, err := executeContext(t, ctx, "run", "--every", "1ms", "--data", `"tick"`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasSuffix(out, "cancelled\n") {
		t.Errorf("output does not end with cancelled:\n%s", out)
	}
	for _, line := range strings.Split(strings.TrimSuffix(out, "cancelled\n"), "\n") {
		if line != "" && line != `"tick"` {
			t.Errorf("unexpected line %q", line)
		}
	}
}

func TestRunCmd_InvalidEvery(t *testing.T) {
	_, err := execute(t, "run", "--every", "500ms!", "--data", "1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "cannot parse to duration value") {
		t.Errorf("error %q lacks context", err)
	}
}

func TestRunCmd_MissingSettings(t *testing.T) {
	if _, err := execute(t, "run", "--data", "1", "--count", "1"); err == nil {
		t.Error("missing --every: expected error")
	}
	if _, err := execute(t, "run", "--every", "1ms", "--count", "1"); err == nil {
		t.Error("missing --data: expected error")
	}
	if _, err := execute(t, "run", "--every", "1ms", "--data", "{", "--count", "1"); err == nil {
		t.Error("invalid --data: expected error")
	}
	for _, jitter := range []string{"-1", "NaN", "+Inf", "-Inf"} {
		if _, err := execute(t, "run", "--every", "1ms", "--data", "1", "--jitter", jitter); err == nil {
			t.Errorf("--jitter %s: expected error", jitter)
		}
	}
}

func TestRunCmd_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barrage.yaml")
	cfg := "every: 1ms\njitter: 0.0\ncount: 2\ndata:\n  b: 2\n  a: 1\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := execute(t, "run", "--config", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "{\"a\":1,\"b\":2}\n{\"a\":1,\"b\":2}\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, err = execute(t, "run", "--config", path, "--data", `"flag"`, "--count", "1")
	if err != nil {
		t.Fatalf("execute with overrides: %v", err)
	}
	if want := "\"flag\"\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestErrorChain(t *testing.T) {
	inner := errors.New("none of provided options matched")
	err := fmt.Errorf("cannot parse to duration value: %w", fmt.Errorf("second parser unsuccessful: %w", inner))

	want := []string{
		"cannot parse to duration value",
		"second parser unsuccessful",
		"none of provided options matched",
	}
	if diff := cmp.Diff(want, errorChain(err)); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	printError(&buf, err)
	if !strings.Contains(buf.String(), "  caused by: none of provided options matched\n") {
		t.Errorf("printError output:\n%s", buf.String())
	}
}
