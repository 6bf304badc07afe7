package editor

import (
	"errors"
	"testing"
)

func TestOpener_FindEditor(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		available map[string]string
		want      string
	}{
		{
			name: "EDITOR wins",
			env:  map[string]string{"EDITOR": "hx", "VISUAL": "code"},
			want: "hx",
		},
		{
			name: "VISUAL when EDITOR unset",
			env:  map[string]string{"VISUAL": "code"},
			want: "code",
		},
		{
			name:      "first available fallback",
			available: map[string]string{"vi": "/usr/bin/vi", "nano": "/usr/bin/nano"},
			want:      "/usr/bin/vi",
		},
		{
			name: "nothing available",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{
				getenv: func(k string) string { return tt.env[k] },
				lookPath: func(name string) (string, error) {
					if p, ok := tt.available[name]; ok {
						return p, nil
					}
					return "", errors.New("not found")
				},
			}
			if got := o.findEditor(); got != tt.want {
				t.Errorf("findEditor() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestOpener_CommandWithoutEditor(t *testing.T) {
	o := &Opener{
		getenv:   func(string) string { return "" },
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}

	if _, err := o.Command("/tmp/EPIC_A.md"); err == nil {
		t.Error("expected error when no editor is available")
	}
}

func TestOpener_CommandArgs(t *testing.T) {
	o := &Opener{
		getenv:   func(k string) string { return map[string]string{"EDITOR": "vim"}[k] },
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}

	cmd, err := o.Command("/tmp/EPIC_A.md")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if len(cmd.Args) != 2 || cmd.Args[0] != "vim" || cmd.Args[1] != "/tmp/EPIC_A.md" {
		t.Errorf("unexpected args %v", cmd.Args)
	}
}
