package static

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestOptionsDefaults(t *testing.T) {
	o := Options{Root: t.TempDir()}
	o.setDefaults()

	if o.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want %q", o.Host, "0.0.0.0")
	}

	if o.Port != 5000 {
		t.Errorf("Port = %d, want %d", o.Port, 5000)
	}

	if o.Index != "index.html" {
		t.Errorf("Index = %q, want %q", o.Index, "index.html")
	}

	if o.Stdout != os.Stdout {
		t.Error("Stdout should default to os.Stdout")
	}

	if o.Logger == nil || o.Clock == nil {
		t.Error("Logger and Clock should be set")
	}

	if o.ReadTimeout != DefaultReadTimeout || o.IdleTimeout != DefaultIdleTimeout {
		t.Errorf("timeouts = %v/%v", o.ReadTimeout, o.IdleTimeout)
	}
}

func TestOptionsValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")

	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		options  Options
		wantErrs int
	}{
		{
			name:     "valid",
			options:  Options{Root: dir, Port: 8080},
			wantErrs: 0,
		},
		{
			name:     "missing root",
			options:  Options{Port: 8080},
			wantErrs: 1,
		},
		{
			name:     "root does not exist",
			options:  Options{Root: filepath.Join(dir, "nope"), Port: 8080},
			wantErrs: 1,
		},
		{
			name:     "root is a file",
			options:  Options{Root: file, Port: 8080},
			wantErrs: 1,
		},
		{
			name:     "port out of range",
			options:  Options{Root: dir, Port: 70000},
			wantErrs: 1,
		},
		{
			name:     "missing root and bad port",
			options:  Options{Port: -1},
			wantErrs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.options.validate()

			if tt.wantErrs == 0 {
				if err != nil {
					t.Fatalf("validate() error = %v, want nil", err)
				}

				return
			}

			var merr *multierror.Error

			if !errors.As(err, &merr) {
				t.Fatalf("validate() error = %v, want *multierror.Error", err)
			}

			if len(merr.Errors) != tt.wantErrs {
				t.Errorf("validate() returned %d errors, want %d: %v", len(merr.Errors), tt.wantErrs, merr)
			}
		})
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("New() without root should fail")
	}
}
