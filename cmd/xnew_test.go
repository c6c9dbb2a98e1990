package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadAnswersFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
	}{
		{
			name: "toml",
			file: "answers.toml",
			content: `project_name = "billing-api"
use_docker = true
plugins = ["serverless-offline"]
`,
		},
		{
			name: "yaml",
			file: "answers.yaml",
			content: `project_name: billing-api
use_docker: true
plugins: [serverless-offline]
`,
		},
		{
			name:    "json",
			file:    "answers.json",
			content: `{"project_name": "billing-api", "use_docker": true, "plugins": ["serverless-offline"]}`,
		},
		{
			name:    "unsupported extension",
			file:    "answers.ini",
			content: "project_name=billing-api\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			file:    "answers.toml",
			content: "project_name = \n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, tt.content)

			answers, err := readAnswersFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if got := answers["project_name"]; got != "billing-api" {
				t.Errorf("project_name = %v", got)
			}
			docker, err := coerceBool(answers["use_docker"])
			if err != nil || !docker {
				t.Errorf("use_docker = %v, %v", answers["use_docker"], err)
			}
			names, err := stringList(answers["plugins"])
			if err != nil || !reflect.DeepEqual(names, []string{"serverless-offline"}) {
				t.Errorf("plugins = %v, %v", names, err)
			}
		})
	}
}

func TestReadAnswersFileMissing(t *testing.T) {
	if _, err := readAnswersFile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		raw     any
		want    bool
		wantErr bool
	}{
		{raw: true, want: true},
		{raw: false, want: false},
		{raw: "true", want: true},
		{raw: " false ", want: false},
		{raw: "yes", wantErr: true},
		{raw: 1, wantErr: true},
		{raw: nil, wantErr: true},
	}

	for _, tt := range tests {
		got, err := coerceBool(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("coerceBool(%v): expected error", tt.raw)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("coerceBool(%v) = %v, %v", tt.raw, got, err)
		}
	}
}

func TestResolvePlugins(t *testing.T) {
	t.Run("catalog order regardless of input order", func(t *testing.T) {
		got, err := resolvePlugins(
			[]string{"serverless-prune-plugin", "serverless-offline"},
			map[string]any{"plugins": []any{"serverless-dotenv-plugin"}},
		)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"serverless-offline", "serverless-dotenv-plugin", "serverless-prune-plugin"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got, err := resolvePlugins(
			[]string{"serverless-offline", "serverless-offline"},
			map[string]any{"plugins": []any{"serverless-offline"}},
		)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 {
			t.Errorf("got %v", got)
		}
	})

	t.Run("unknown plugin rejected", func(t *testing.T) {
		if _, err := resolvePlugins([]string{"serverless-webpack"}, nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("empty means none", func(t *testing.T) {
		got, err := resolvePlugins(nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("got %v", got)
		}
	})
}
