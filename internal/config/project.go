package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the per-book settings file looked up in the book root.
const ProjectFileName = ".mdaudit.yml"

// Project represents per-book settings from .mdaudit.yml.
type Project struct {
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Ignore     []string        `yaml:"ignore"`
	Badge      BadgeConfig     `yaml:"badge"`
}

// ThresholdConfig contains the stub line-count thresholds per command.
type ThresholdConfig struct {
	Dashboard int `yaml:"dashboard"`
	Audit     int `yaml:"audit"`
}

// BadgeConfig contains shields.io badge settings for the progress dashboard.
type BadgeConfig struct {
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// DefaultProject returns the project settings used when no .mdaudit.yml exists.
func DefaultProject() Project {
	return Project{
		Thresholds: ThresholdConfig{
			Dashboard: DefaultDashboardThreshold,
			Audit:     DefaultAuditThreshold,
		},
		Badge: BadgeConfig{
			Label: "content",
			Color: "blue",
		},
	}
}

// LoadProject reads .mdaudit.yml from the book root. A missing file is not
// an error; defaults are returned. Zero-value fields in the file fall back
// to defaults, so a partial file only overrides what it names.
func LoadProject(bookRoot string) (Project, error) {
	project := DefaultProject()

	path := filepath.Join(bookRoot, ProjectFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return project, nil
		}
		return Project{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file Project
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Project{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if file.Thresholds.Dashboard > 0 {
		project.Thresholds.Dashboard = file.Thresholds.Dashboard
	}
	if file.Thresholds.Audit > 0 {
		project.Thresholds.Audit = file.Thresholds.Audit
	}
	if len(file.Ignore) > 0 {
		project.Ignore = file.Ignore
	}
	if file.Badge.Label != "" {
		project.Badge.Label = file.Badge.Label
	}
	if file.Badge.Color != "" {
		project.Badge.Color = file.Badge.Color
	}

	if err := validateProject(project); err != nil {
		return Project{}, err
	}

	return project, nil
}

func validateProject(p Project) error {
	if p.Thresholds.Dashboard < 0 {
		return fmt.Errorf("thresholds.dashboard must not be negative")
	}
	if p.Thresholds.Audit < 0 {
		return fmt.Errorf("thresholds.audit must not be negative")
	}
	for _, pattern := range p.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
	}
	return nil
}
