package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the on-disk description of one wallpaper: the shooting
// schedule, milestones and how to draw them. YAML and JSON share the same
// field names.
type ProjectFile struct {
	Project    ProjectSection   `yaml:"project" json:"project"`
	Layout     LayoutSection    `yaml:"layout,omitempty" json:"layout,omitempty"`
	Canvas     CanvasSection    `yaml:"canvas,omitempty" json:"canvas,omitempty"`
	Design     DesignSection    `yaml:"design,omitempty" json:"design,omitempty"`
	Milestones []MilestoneEntry `yaml:"milestones,omitempty" json:"milestones,omitempty"`
	Output     string           `yaml:"output,omitempty" json:"output,omitempty"`
}

type ProjectSection struct {
	Name            string   `yaml:"name" json:"name"`
	TotalDays       int      `yaml:"total_days" json:"total_days"`
	StartDate       string   `yaml:"start_date" json:"start_date"`
	WeekendWorkDays []string `yaml:"weekend_work_days,omitempty" json:"weekend_work_days,omitempty"`
	WeekdayOffDays  []string `yaml:"weekday_off_days,omitempty" json:"weekday_off_days,omitempty"`
}

type LayoutSection struct {
	Strategy string  `yaml:"strategy,omitempty" json:"strategy,omitempty"`
	Spacing  float64 `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Cols     int     `yaml:"cols,omitempty" json:"cols,omitempty"`
	Rows     int     `yaml:"rows,omitempty" json:"rows,omitempty"`
}

type CanvasSection struct {
	Width  int `yaml:"width,omitempty" json:"width,omitempty"`
	Height int `yaml:"height,omitempty" json:"height,omitempty"`
	// VerticalBias is a pointer because 0 is a meaningful override.
	VerticalBias *float64 `yaml:"vertical_bias,omitempty" json:"vertical_bias,omitempty"`
}

type DesignSection struct {
	Colors      ColorsSection      `yaml:"colors,omitempty" json:"colors,omitempty"`
	Dots        DotsSection        `yaml:"dots,omitempty" json:"dots,omitempty"`
	ProgressBar ProgressBarSection `yaml:"progress_bar,omitempty" json:"progress_bar,omitempty"`
	Text        TextSection        `yaml:"text,omitempty" json:"text,omitempty"`
	Milestones  MilestoneDesign    `yaml:"milestones,omitempty" json:"milestones,omitempty"`
	Font        string             `yaml:"font,omitempty" json:"font,omitempty"`
}

type ColorsSection struct {
	Background    string `yaml:"background,omitempty" json:"background,omitempty"`
	PastDays      string `yaml:"past_days,omitempty" json:"past_days,omitempty"`
	Today         string `yaml:"today,omitempty" json:"today,omitempty"`
	FutureDays    string `yaml:"future_days,omitempty" json:"future_days,omitempty"`
	ProgressBar   string `yaml:"progress_bar,omitempty" json:"progress_bar,omitempty"`
	ProgressBarBg string `yaml:"progress_bar_bg,omitempty" json:"progress_bar_bg,omitempty"`
	Text          string `yaml:"text,omitempty" json:"text,omitempty"`
	TextSecondary string `yaml:"text_secondary,omitempty" json:"text_secondary,omitempty"`
	Milestone     string `yaml:"milestone,omitempty" json:"milestone,omitempty"`
}

type DotsSection struct {
	Size float64 `yaml:"size,omitempty" json:"size,omitempty"`
}

type ProgressBarSection struct {
	Width     float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height    float64 `yaml:"height,omitempty" json:"height,omitempty"`
	MarginTop float64 `yaml:"margin_top,omitempty" json:"margin_top,omitempty"`
}

type TextSection struct {
	FontSize  float64 `yaml:"font_size,omitempty" json:"font_size,omitempty"`
	MarginTop float64 `yaml:"margin_top,omitempty" json:"margin_top,omitempty"`
}

type MilestoneDesign struct {
	FontSize    float64 `yaml:"font_size,omitempty" json:"font_size,omitempty"`
	CurveLength float64 `yaml:"curve_length,omitempty" json:"curve_length,omitempty"`
	LineWidth   float64 `yaml:"line_width,omitempty" json:"line_width,omitempty"`
}

type MilestoneEntry struct {
	Date      string `yaml:"date" json:"date"`
	Label     string `yaml:"label" json:"label"`
	Placement string `yaml:"placement,omitempty" json:"placement,omitempty"`
}

// LoadProjectFile reads a project file; .json is decoded as JSON, anything
// else as YAML. Unknown fields are rejected so typos surface early.
func LoadProjectFile(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf ProjectFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&pf); err != nil {
			return nil, fmt.Errorf("parsing project file: %w", err)
		}
		return &pf, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing project file: %s is empty", path)
		}
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	return &pf, nil
}

// Marshal renders pf as YAML.
func (pf *ProjectFile) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(pf); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultProjectFile describes the DOCTOR shoot: 75 days from 2025-11-17,
// one Saturday shoot and a Christmas break.
func DefaultProjectFile() *ProjectFile {
	return &ProjectFile{
		Project: ProjectSection{
			Name:            "DOCTOR",
			TotalDays:       75,
			StartDate:       "2025-11-17",
			WeekendWorkDays: []string{"2026-01-17"},
			WeekdayOffDays:  []string{"2025-12-22", "2025-12-23", "2025-12-24", "2025-12-25", "2025-12-26"},
		},
		Layout: LayoutSection{Strategy: "spiral", Spacing: 42},
		Milestones: []MilestoneEntry{
			{Date: "2025-12-24", Label: "Christmas break"},
			{Date: "2026-01-17", Label: "Saturday shoot"},
			{Date: "2026-03-05", Label: "Wrap"},
		},
		Output: "shooting-days-wallpaper.png",
	}
}
