package formatter

import (
	"fmt"
	"strings"
)

// FormatValidation reports project-file errors and lint warnings.
func FormatValidation(source string, errs []error, warnings []string) string {
	var b strings.Builder

	switch {
	case len(errs) == 0 && len(warnings) == 0:
		fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("✔"), Bold(source)+" is valid")
		return b.String()
	case len(errs) == 0:
		fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("✔"), Bold(source)+" is valid, with warnings")
	default:
		fmt.Fprintf(&b, "%s %s\n", StyleRed.Render("✖"), Bold(source)+fmt.Sprintf(" has %d error(s)", len(errs)))
	}

	for _, err := range errs {
		b.WriteString(StyleRed.Render("  ERROR: "+err.Error()) + "\n")
	}
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
	}
	return b.String()
}
