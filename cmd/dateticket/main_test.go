package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/naveenspark/dateticket/internal/config"
	"github.com/naveenspark/dateticket/pkg/ticket"
)

var testNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

// isolate keeps tests away from any real user config.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	t.Setenv("HOME", t.TempDir())
	return t.TempDir()
}

func TestRunRenderWritesFiles(t *testing.T) {
	dir := isolate(t)
	var stdout, stderr bytes.Buffer
	err := runRender(context.Background(), []string{
		"--name", "Aleida",
		"--date", "2025-02-14T19:00",
		"--out-dir", dir,
		"--seed", "14",
	}, &stdout, &stderr, testNow)
	if err != nil {
		t.Fatalf("runRender: %v\nstderr: %s", err, stderr.String())
	}
	for _, name := range []string{ticket.DefaultPNGName, ticket.DefaultPDFName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(stdout.String(), "Code: ") {
		t.Errorf("stdout missing ticket code:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "ticket rendered") {
		t.Errorf("stderr missing render log:\n%s", stderr.String())
	}
}

func TestRunRenderFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantPNG bool
		wantPDF bool
	}{
		{"png", true, false},
		{"pdf", false, true},
		{"BOTH", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := isolate(t)
			var out bytes.Buffer
			if err := runRender(context.Background(), []string{"--format", tt.format, "--out-dir", dir}, &out, &out, testNow); err != nil {
				t.Fatalf("runRender: %v", err)
			}
			_, errPNG := os.Stat(filepath.Join(dir, ticket.DefaultPNGName))
			_, errPDF := os.Stat(filepath.Join(dir, ticket.DefaultPDFName))
			if (errPNG == nil) != tt.wantPNG || (errPDF == nil) != tt.wantPDF {
				t.Errorf("png written=%v pdf written=%v, want %v %v", errPNG == nil, errPDF == nil, tt.wantPNG, tt.wantPDF)
			}
		})
	}
}

func TestRunRenderPDFFailureKeepsPNG(t *testing.T) {
	dir := isolate(t)
	var out bytes.Buffer
	err := runRender(context.Background(), []string{"--out-dir", dir, "--pdf-margin", "1000"}, &out, &out, testNow)
	if !ticket.IsDocumentExport(err) {
		t.Fatalf("error = %v, want DocumentExportError", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ticket.DefaultPNGName)); err != nil {
		t.Errorf("png missing after pdf failure: %v", err)
	}
	if !strings.Contains(out.String(), ticket.DefaultPNGName) {
		t.Errorf("output does not mention the saved png:\n%s", out.String())
	}
}

func TestRunRenderRejects(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad format", []string{"--format", "gif"}, "unknown format"},
		{"bad date", []string{"--date", "next friday"}, "target_date"},
		{"bad level", []string{"--log-level", "chatty"}, "log level"},
		{"stray argument", []string{"extra"}, "unexpected argument"},
		{"unknown flag", []string{"--colour", "red"}, "unknown flag"},
		{"missing config", []string{"--config", "/nonexistent/dateticket.yaml"}, "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			var out bytes.Buffer
			args := append([]string{"--out-dir", dir}, tt.args...)
			err := runRender(context.Background(), args, &out, &out, testNow)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunRenderHelp(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer
	if err := runRender(context.Background(), []string{"--help"}, &stdout, &stderr, testNow); err != nil {
		t.Fatalf("runRender --help: %v", err)
	}
	for _, want := range []string{"--name", "--format", "--seed", "tbc"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestApplyFlagsOnlyOverridesChanged(t *testing.T) {
	var f renderFlags
	fs := newRenderFlagSet(&f)
	if err := fs.Parse([]string{"--name", "Alex", "--date", "tbc", "--pdf-margin", "12"}); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Location = "Paris"
	if err := applyFlags(fs, &f, cfg); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.Recipient != "Alex" {
		t.Errorf("recipient = %q, want Alex", cfg.Recipient)
	}
	if cfg.Location != "Paris" {
		t.Errorf("location = %q, unset flag should keep config value", cfg.Location)
	}
	if !cfg.Unconfirmed() {
		t.Error("date tbc should leave the ticket unconfirmed")
	}
	if cfg.Output.PDFMargin != 12 {
		t.Errorf("margin = %v, want 12", cfg.Output.PDFMargin)
	}
}

func TestZeroPDFMarginIsKept(t *testing.T) {
	tests := []struct {
		name string
		args []string
		yaml string
	}{
		{"flag", []string{"--pdf-margin", "0"}, ""},
		{"config file", nil, "output:\n  pdf_margin: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			cfgPath := ""
			if tt.yaml != "" {
				cfgPath = filepath.Join(t.TempDir(), "config.yaml")
				if err := os.WriteFile(cfgPath, []byte(tt.yaml), 0o600); err != nil {
					t.Fatal(err)
				}
			}
			var f renderFlags
			fs := newRenderFlagSet(&f)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatal(err)
			}
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if err := applyFlags(fs, &f, cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}
			spec, err := cfg.Spec(testNow)
			if err != nil {
				t.Fatal(err)
			}
			if got := pdfOptions(cfg, spec).MarginPoints(); got != 0 {
				t.Errorf("pdf margin = %v, want 0", got)
			}
		})
	}
}

func TestRunRenderZeroPDFMargin(t *testing.T) {
	dir := isolate(t)
	var out bytes.Buffer
	if err := runRender(context.Background(), []string{"--out-dir", dir, "--format", "pdf", "--pdf-margin", "0"}, &out, &out, testNow); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ticket.DefaultPDFName)); err != nil {
		t.Errorf("pdf not written: %v", err)
	}
}

func TestRunRenderUsesConfigFile(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	body := "recipient: Sam\noutput:\n  dir: " + dir + "\n  png_name: sam.png\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvVar, cfgPath)

	var out bytes.Buffer
	if err := runRender(context.Background(), []string{"--format", "png"}, &out, &out, testNow); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sam.png")); err != nil {
		t.Errorf("configured png name not used: %v", err)
	}
}

func TestPrintHelp(t *testing.T) {
	var b bytes.Buffer
	printHelp(&b)
	for _, want := range []string{"dateticket render", "--version"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}
