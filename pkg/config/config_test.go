package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    func() Config
		wantErr string
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			want: Default,
		},
		{
			name: "overrides",
			yaml: `
allowUnknownFields: true
exclude: ["**/drafts/**"]
concurrency: 8
output:
  indent: "\t"
assets:
  format: svg
  scales: [1, 2]
report:
  componentTree: true
`,
			want: func() Config {
				c := Default()
				c.AllowUnknownFields = true
				c.Exclude = []string{"**/drafts/**"}
				c.Concurrency = 8
				c.Output.Indent = "\t"
				c.Assets.Format = "svg"
				c.Assets.Scales = []float64{1, 2}
				c.Report.ComponentTree = true
				return c
			},
		},
		{
			name:    "unknown key",
			yaml:    "concurency: 2\n",
			wantErr: "concurency",
		},
		{
			name:    "bad concurrency",
			yaml:    "concurrency: 0\n",
			wantErr: "concurrency must be at least 1",
		},
		{
			name:    "bad format",
			yaml:    "assets:\n  format: gif\n",
			wantErr: "invalid asset format",
		},
		{
			name:    "bad scale",
			yaml:    "assets:\n  scales: [1, -2]\n",
			wantErr: "scale value must be positive",
		},
		{
			name:    "bad exclude pattern",
			yaml:    "exclude: [\"drafts/[unclosed\"]\n",
			wantErr: "invalid exclude pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Parse([]byte(tt.yaml), &cfg)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want it to mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if want := tt.want(); !reflect.DeepEqual(cfg, want) {
				t.Errorf("Parse() = %+v, want %+v", cfg, want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, used, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if used != "" || !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(missing) = %+v, %q; want defaults", cfg, used)
	}

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("tsgen:\n  out: gen/ts\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, used, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if used != path || cfg.TSGen.Out != "gen/ts" || cfg.Concurrency != 4 {
		t.Errorf("Load() = %+v, %q", cfg, used)
	}

	if err := os.WriteFile(path, []byte("concurrency: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "custom.yaml") {
		t.Errorf("Load(malformed) error = %v, want it to name the file", err)
	}
}
