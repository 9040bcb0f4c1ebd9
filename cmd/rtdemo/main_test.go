package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/rt"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    config
		wantErr bool
	}{
		{
			name: "defaults",
			want: config{output: "chapter02.ppm", format: "p3", scale: 1},
		},
		{
			name: "all flags",
			args: []string{"-script", "a.zy", "-output", "a.png", "-format", "PNG", "-scale", "3", "-v"},
			want: config{script: "a.zy", output: "a.png", format: "png", scale: 3, verbose: true},
		},
		{
			name: "version",
			args: []string{"-version"},
			want: config{output: "chapter02.ppm", format: "p3", scale: 1, version: true},
		},
		{name: "unknown format", args: []string{"-format", "gif"}, wantErr: true},
		{name: "bad scale", args: []string{"-scale", "0"}, wantErr: true},
		{name: "unknown flag", args: []string{"-nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args, &bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, err := parseFlags([]string{"-h"}, &bytes.Buffer{})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseFlags(-h) = %v, want flag.ErrHelp", err)
	}
}

func TestRun_Version(t *testing.T) {
	out := filepath.Join(t.TempDir(), "unused.ppm")
	var stdout bytes.Buffer
	if err := run([]string{"-version", "-output", out}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if got, want := stdout.String(), "rtdemo "+rt.Version+"\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("-version wrote %s (stat err %v)", out, err)
	}
}

func TestVersionParts(t *testing.T) {
	want := fmt.Sprintf("%d.%d.%d", rt.VersionMajor, rt.VersionMinor, rt.VersionPatch)
	if rt.Version != want {
		t.Errorf("Version = %q, want %q from its parts", rt.Version, want)
	}
}

func TestRun_Formats(t *testing.T) {
	dir := t.TempDir()
	for format := range encoders {
		t.Run(format, func(t *testing.T) {
			out := filepath.Join(dir, "out."+format)
			var stdout bytes.Buffer
			if err := run([]string{"-format", format, "-output", out}, &stdout, &bytes.Buffer{}); err != nil {
				t.Fatalf("run() = %v", err)
			}
			info, err := os.Stat(out)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size() == 0 {
				t.Error("empty output file")
			}
			if !strings.Contains(stdout.String(), "900×550") {
				t.Errorf("summary = %q, want canvas size", stdout.String())
			}
		})
	}
}

func TestRun_PPMReadsBack(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chapter02_binary.ppm")
	if err := run([]string{"-format", "p6", "-output", out}, &bytes.Buffer{}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() = %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	c, err := rt.ReadPPM(f)
	if err != nil {
		t.Fatalf("ReadPPM() = %v", err)
	}
	red := 0
	for _, col := range c.All() {
		if col.Equal(rt.Red) {
			red++
		}
	}
	if red == 0 {
		t.Error("no trajectory in output")
	}
}

func TestRun_ScriptAndScale(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "small.zy")
	err := os.WriteFile(src, []byte(`
; a short hop
(canvas 40 30)
(projectile :position (point 0 1 0) :velocity (vector 1 1 0) :speed 2)
(ink (color 0 0 1))
`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "small.png")
	var stdout, stderr bytes.Buffer
	args := []string{"-script", src, "-format", "png", "-scale", "2", "-output", out, "-v"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if !strings.Contains(stdout.String(), "80×60") {
		t.Errorf("summary = %q, want scaled size 80×60", stdout.String())
	}
	if !strings.Contains(stderr.String(), "script evaluated") {
		t.Errorf("verbose log = %q, want script debug record", stderr.String())
	}
}

func TestRun_ScriptError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.zy")
	if err := os.WriteFile(src, []byte("(canvas 0 0)"), 0o600); err != nil {
		t.Fatal(err)
	}
	err := run([]string{"-script", src, "-output", filepath.Join(dir, "x.ppm")}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "bad.zy") {
		t.Errorf("run() = %v, want error naming the script", err)
	}
}

func TestRun_MissingScript(t *testing.T) {
	err := run([]string{"-script", filepath.Join(t.TempDir(), "none.zy")}, &bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("run() = %v, want os.ErrNotExist", err)
	}
}
