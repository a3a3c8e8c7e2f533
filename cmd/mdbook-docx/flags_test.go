package main

import (
	"errors"
	"io"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    renderFlags
		wantErr bool
	}{
		{name: "no args", args: nil, want: renderFlags{}},
		{name: "short config", args: []string{"-c", "docs"}, want: renderFlags{config: "docs"}},
		{
			name: "all long",
			args: []string{"--config=docs.yaml", "--pandoc", "/bin/pandoc", "--verbose", "--quiet"},
			want: renderFlags{config: "docs.yaml", common: commonFlags{pandoc: "/bin/pandoc", verbose: true, quiet: true}},
		},
		{name: "unknown flag", args: []string{"--workers", "2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseRenderFlags(tt.args, io.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRenderFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && *got != tt.want {
				t.Errorf("parseRenderFlags() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseDoctorFlags(t *testing.T) {
	t.Parallel()

	got, err := parseDoctorFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.book != "." || got.json {
		t.Errorf("defaults = %+v, want book=. json=false", *got)
	}

	got, err = parseDoctorFlags([]string{"-b", "docs", "--json", "--pandoc", "p"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.book != "docs" || !got.json || got.common.pandoc != "p" {
		t.Errorf("parsed = %+v", *got)
	}

	if _, err := parseDoctorFlags([]string{"--help"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("--help error = %v, want flag.ErrHelp", err)
	}
}
