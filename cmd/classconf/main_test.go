package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/classconf/classconf"
	"github.com/classconf/classconf/django"
	"github.com/classconf/classconf/internal/render"
)

func TestRunDumpWritesYAML(t *testing.T) {
	var buf bytes.Buffer

	if err := runDump(django.Default(), render.FormatYAML, "", &buf); err != nil {
		t.Fatalf("runDump returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "TIME_ZONE: UTC") {
		t.Fatalf("expected TIME_ZONE in dump, got:\n%s", out)
	}
	if strings.Contains(out, "SECRET_KEY") {
		t.Fatalf("empty SECRET_KEY must not be dumped:\n%s", out)
	}
}

func TestRunDumpWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	if err := runDump(django.Default(), render.FormatJSON, path, nil); err != nil {
		t.Fatalf("runDump returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if !strings.Contains(string(data), "\"TIME_ZONE\"") {
		t.Fatalf("expected JSON output in file, got:\n%s", data)
	}
}

func TestRunGet(t *testing.T) {
	var buf bytes.Buffer

	if err := runGet(django.Default(), "TIME_ZONE", &buf); err != nil {
		t.Fatalf("runGet returned error: %v", err)
	}
	if got := buf.String(); got != "TIME_ZONE: UTC\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunGetUnknownName(t *testing.T) {
	err := runGet(django.Default(), "NOT_A_FIELD", &bytes.Buffer{})
	if !errors.Is(err, classconf.ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "NOT_A_FIELD") {
		t.Fatalf("error must name the missing setting: %v", err)
	}
}

func TestLoadSettingsWithProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("time_zone: Asia/Tokyo\n"), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	settings, err := loadSettings(path)
	if err != nil {
		t.Fatalf("loadSettings returned error: %v", err)
	}
	if settings.TimeZone != "Asia/Tokyo" {
		t.Fatalf("expected profile time zone, got %q", settings.TimeZone)
	}
}
