package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProjectFile(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, ProjectFileName), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write project file: %v", err)
	}
}

func TestLoadProject_Missing(t *testing.T) {
	project, err := LoadProject(t.TempDir())
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}

	if project.Thresholds.Dashboard != DefaultDashboardThreshold {
		t.Errorf("dashboard threshold = %d, want %d", project.Thresholds.Dashboard, DefaultDashboardThreshold)
	}
	if project.Thresholds.Audit != DefaultAuditThreshold {
		t.Errorf("audit threshold = %d, want %d", project.Thresholds.Audit, DefaultAuditThreshold)
	}
	if project.Badge.Label != "content" || project.Badge.Color != "blue" {
		t.Errorf("badge = %+v", project.Badge)
	}
}

func TestLoadProject_FullFile(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, `
thresholds:
  dashboard: 30
  audit: 15
ignore:
  - "*.draft.md"
  - "templates/*"
badge:
  label: swift course
  color: orange
`)

	project, err := LoadProject(root)
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}

	if project.Thresholds.Dashboard != 30 || project.Thresholds.Audit != 15 {
		t.Errorf("thresholds = %+v", project.Thresholds)
	}
	if len(project.Ignore) != 2 {
		t.Errorf("ignore = %v", project.Ignore)
	}
	if project.Badge.Label != "swift course" || project.Badge.Color != "orange" {
		t.Errorf("badge = %+v", project.Badge)
	}
}

func TestLoadProject_PartialFile(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "thresholds:\n  audit: 5\n")

	project, err := LoadProject(root)
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}

	// Named fields override; the rest keep defaults.
	if project.Thresholds.Audit != 5 {
		t.Errorf("audit threshold = %d, want 5", project.Thresholds.Audit)
	}
	if project.Thresholds.Dashboard != DefaultDashboardThreshold {
		t.Errorf("dashboard threshold = %d, want default %d",
			project.Thresholds.Dashboard, DefaultDashboardThreshold)
	}
	if project.Badge.Label != "content" {
		t.Errorf("badge label = %q, want default", project.Badge.Label)
	}
}

func TestLoadProject_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "thresholds: [unbalanced"},
		{name: "bad ignore pattern", content: "ignore:\n  - \"[\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeProjectFile(t, root, tt.content)

			if _, err := LoadProject(root); err == nil {
				t.Error("LoadProject() expected error")
			}
		})
	}
}
