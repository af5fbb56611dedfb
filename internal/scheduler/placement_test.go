package scheduler

import (
	"testing"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAutoPlacement(t *testing.T) {
	tests := []struct {
		name       string
		relX, relY float64
		want       domain.Placement
	}{
		// Left edge.
		{"left edge top", 0.1, 0.1, domain.PlacementTopRight},
		{"left edge middle", 0.1, 0.5, domain.PlacementRight},
		{"left edge bottom", 0.1, 0.9, domain.PlacementBottomRight},
		{"left edge relY=0.33 is middle", 0.1, 0.33, domain.PlacementRight},
		{"left edge relY=0.67 is middle", 0.1, 0.67, domain.PlacementRight},
		// Right edge.
		{"right edge top", 0.9, 0.1, domain.PlacementTopLeft},
		{"right edge middle", 0.9, 0.5, domain.PlacementLeft},
		{"right edge bottom", 0.9, 0.9, domain.PlacementBottomLeft},
		{"right edge relY=0.33 is middle", 0.9, 0.33, domain.PlacementLeft},
		{"right edge relY=0.67 is middle", 0.9, 0.67, domain.PlacementLeft},
		// relX boundaries take the else branch.
		{"relX=0.25 is not left edge", 0.25, 0.5, domain.PlacementRight},
		{"relX=0.25 near top", 0.25, 0.1, domain.PlacementBottom},
		{"relX=0.75 is not right edge", 0.75, 0.5, domain.PlacementLeft},
		{"relX=0.75 near bottom", 0.75, 0.9, domain.PlacementTop},
		// Top/bottom band.
		{"top band", 0.5, 0.1, domain.PlacementBottom},
		{"bottom band", 0.5, 0.9, domain.PlacementTop},
		{"relY=0.25 is central", 0.4, 0.25, domain.PlacementRight},
		{"relY=0.75 is central", 0.6, 0.75, domain.PlacementLeft},
		// Centre.
		{"central left half", 0.4, 0.5, domain.PlacementRight},
		{"central relX=0.5", 0.5, 0.5, domain.PlacementLeft},
		{"central right half", 0.6, 0.5, domain.PlacementLeft},
		// Extremes.
		{"origin corner", 0, 0, domain.PlacementTopRight},
		{"far corner", 1, 1, domain.PlacementBottomLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoPlacement(tt.relX, tt.relY))
		})
	}
}

func TestAutoPlacement_AlwaysConcrete(t *testing.T) {
	for x := 0.0; x <= 1.0; x += 0.05 {
		for y := 0.0; y <= 1.0; y += 0.05 {
			p := AutoPlacement(x, y)
			assert.True(t, domain.ValidPlacements[p], "(%.2f, %.2f) -> %q", x, y, p)
		}
	}
}
