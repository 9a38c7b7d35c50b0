package docio

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const doc = `{"id":"0:0","name":"Doc","variant":{"type":"document","data":{"children":[]}}}`

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name           string
		file           string
		wantCompressed bool
	}{
		{name: "plain", file: "doc.json", wantCompressed: false},
		{name: "compressed", file: "doc.json.zst", wantCompressed: true},
		{name: "nested directory", file: filepath.Join("out", "nested", "doc.json.ZST"), wantCompressed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := WriteFile(path, []byte(doc)); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if got := bytes.HasPrefix(raw, zstdMagic); got != tt.wantCompressed {
				t.Errorf("stored compressed = %v, want %v", got, tt.wantCompressed)
			}

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(got) != doc {
				t.Errorf("ReadFile() = %q, want %q", got, doc)
			}
		})
	}
}

func TestReadFileDetectsCompressionByContent(t *testing.T) {
	data, err := Compress([]byte(doc))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != doc {
		t.Errorf("ReadFile() = %q, want %q", got, doc)
	}
}

func TestNewReaderShortInput(t *testing.T) {
	for _, in := range []string{"", "{}"} {
		r, err := NewReader(strings.NewReader(in))
		if err != nil {
			t.Fatalf("NewReader(%q) error = %v", in, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(r); err != nil {
			t.Fatal(err)
		}
		if buf.String() != in {
			t.Errorf("NewReader(%q) read %q", in, buf.String())
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); !os.IsNotExist(err) {
		t.Errorf("ReadFile() error = %v, want not-exist", err)
	}
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"a.json",
		"b.json.zst",
		"notes.txt",
		filepath.Join("pages", "home.json"),
		filepath.Join("pages", "deep", "settings.json"),
		filepath.Join("drafts", "wip.json"),
	} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	join := func(names ...string) []string {
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = filepath.Join(dir, n)
		}
		return out
	}

	tests := []struct {
		name     string
		patterns []string
		exclude  []string
		want     []string
	}{
		{
			name:     "single level",
			patterns: join("*.json"),
			want:     join("a.json"),
		},
		{
			name:     "recursive",
			patterns: join("**/*.json"),
			want:     join("a.json", "drafts/wip.json", "pages/deep/settings.json", "pages/home.json"),
		},
		{
			name:     "exclude",
			patterns: join("**/*.json", "*.zst"),
			exclude:  []string{filepath.ToSlash(dir) + "/drafts/**"},
			want:     join("a.json", "b.json.zst", "pages/deep/settings.json", "pages/home.json"),
		},
		{
			name:     "literal path kept and deduplicated",
			patterns: join("a.json", "*.json", "missing.json"),
			want:     join("a.json", "missing.json"),
		},
		{
			name:     "no match",
			patterns: join("**/*.yaml"),
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.patterns, tt.exclude)
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandInvalidPattern(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		exclude  []string
	}{
		{name: "pattern", patterns: []string{"[unclosed"}},
		{name: "exclude", patterns: []string{"a.json"}, exclude: []string{"drafts/[unclosed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Expand(tt.patterns, tt.exclude); err == nil {
				t.Error("Expand() error = nil, want invalid pattern")
			}
		})
	}
}
