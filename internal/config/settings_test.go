package config

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danieljhkim/showorder/internal/fsops"
)

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    func(s *Settings)
		wantErr bool
	}{
		{
			name: "missing file gives defaults",
			want: func(s *Settings) {},
		},
		{
			name:    "empty file gives defaults",
			content: "",
			want:    func(s *Settings) {},
		},
		{
			name:    "partial override",
			content: "blocks: 3\ntimeout: 90s\nweights:\n  pairing: 10\n",
			want: func(s *Settings) {
				s.Blocks = 3
				s.Timeout = 90 * time.Second
				s.Weights.Pairing = 10
			},
		},
		{
			name:    "unknown field",
			content: "blockz: 3\n",
			wantErr: true,
		},
		{
			name:    "invalid output",
			content: "output: xml\n",
			wantErr: true,
		},
		{
			name:    "zero workers",
			content: "workers: 0\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fsops.NewMemFS()
			path := "/home/sm/.showorder/config.yaml"
			if tt.name != "missing file gives defaults" {
				if err := fsys.AtomicWrite(path, []byte(tt.content), 0644); err != nil {
					t.Fatalf("AtomicWrite failed: %v", err)
				}
			}

			got, err := LoadSettings(fsys, path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSettings) {
					t.Fatalf("LoadSettings() error = %v, want ErrInvalidSettings", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadSettings() error = %v", err)
			}

			want := DefaultSettings()
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("LoadSettings() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSettings_SaveRoundTrip(t *testing.T) {
	fsys := fsops.NewMemFS()
	s := DefaultSettings()
	s.Output = FormatYAML
	s.Timeout = 2 * time.Minute

	if err := s.Save(fsys, "/cfg/config.yaml"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := LoadSettings(fsys, "/cfg/config.yaml")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
