package render

import "image/color"

type Palette struct {
	Background    color.NRGBA
	PastDays      color.NRGBA
	Today         color.NRGBA
	FutureDays    color.NRGBA
	ProgressBar   color.NRGBA
	ProgressBarBg color.NRGBA
	Text          color.NRGBA
	TextSecondary color.NRGBA
	Milestone     color.NRGBA
	Shadow        color.NRGBA
}

type ProgressBarStyle struct {
	Width     float64
	Height    float64
	MarginTop float64
}

type CaptionStyle struct {
	FontSize  float64
	MarginTop float64
}

type MilestoneStyle struct {
	FontSize float64
	// CurveLength is the distance from the anchor to the label.
	CurveLength     float64
	LineWidth       float64
	MarkerRadius    float64
	UnderlineHeight float64
	LabelPadding    float64
}

// Style is the full visual configuration of a wallpaper.
type Style struct {
	Colors      Palette
	DotSize     float64
	ProgressBar ProgressBarStyle
	Caption     CaptionStyle
	Milestones  MilestoneStyle
	// FontPath optionally points at a TTF/OTF file; empty uses Go Regular/Bold.
	FontPath string
}

// DefaultStyle mirrors the dark reference wallpaper.
func DefaultStyle() Style {
	return Style{
		Colors: Palette{
			Background:    MustHex("#1a1a1a"),
			PastDays:      MustHex("#ffffff"),
			Today:         MustHex("#ec4899"),
			FutureDays:    MustHex("#404040"),
			ProgressBar:   MustHex("#ec4899"),
			ProgressBarBg: MustHex("#2d2d2d"),
			Text:          MustHex("#ffffff"),
			TextSecondary: MustHex("#6b7280"),
			Milestone:     MustHex("#9ca3af"),
			Shadow:        color.NRGBA{A: 0x99},
		},
		DotSize: 14,
		ProgressBar: ProgressBarStyle{
			Width:     600,
			Height:    4,
			MarginTop: 60,
		},
		Caption: CaptionStyle{
			FontSize:  32,
			MarginTop: 60,
		},
		Milestones: MilestoneStyle{
			FontSize:        26,
			CurveLength:     110,
			LineWidth:       2,
			MarkerRadius:    13,
			UnderlineHeight: 3,
			LabelPadding:    8,
		},
	}
}
