package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrompts(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	full := write("full.json", `{"system_prompt":"S","user_prompt":"U {transcript}","language":"en"}`)
	partial := write("partial.json", `{"language":"de"}`)
	broken := write("broken.json", `{"system_prompt":`)
	missing := filepath.Join(dir, "missing.json")

	tests := []struct {
		name     string
		path     string
		required bool
		want     PromptOverride
		wantErr  bool
	}{
		{name: "full override", path: full, want: PromptOverride{System: "S", User: "U {transcript}", Language: "en"}},
		{name: "partial override", path: partial, want: PromptOverride{Language: "de"}},
		{name: "missing optional", path: missing},
		{name: "missing required", path: missing, required: true, wantErr: true},
		{name: "malformed", path: broken, wantErr: true},
		{name: "no path", path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadPrompts(tt.path, tt.required)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadPrompts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LoadPrompts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveTarget(t *testing.T) {
	file := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(file, []byte(`{"database_id":"from-file","category":"Retro"}`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		notion  NotionConfig
		wantID  string
		wantNil bool
		wantErr bool
	}{
		{name: "nothing configured", wantNil: true},
		{name: "inline descriptor", notion: NotionConfig{Target: `{"id":"inline"}`}, wantID: "inline"},
		{name: "file wins over inline", notion: NotionConfig{TargetFile: file, Target: `{"id":"inline"}`}, wantID: "from-file"},
		{name: "malformed inline", notion: NotionConfig{Target: `{"id"`}, wantErr: true},
		{name: "inline without id", notion: NotionConfig{Target: `{"title":"x"}`}, wantErr: true},
		{name: "missing file", notion: NotionConfig{TargetFile: file + ".nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Notion: tt.notion}
			got, err := cfg.ResolveTarget()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveTarget() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("ResolveTarget() = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.DatabaseID != tt.wantID {
				t.Errorf("ResolveTarget() = %+v, want id %s", got, tt.wantID)
			}
		})
	}
}
