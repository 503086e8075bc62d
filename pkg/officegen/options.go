// Package officegen generates and inspects static office documents.
package officegen

import "fmt"

// Mode represents the inspection detail level.
type Mode string

const (
	// ModeLight reads cells, formulas and document text only (no shapes or table candidates).
	ModeLight Mode = "light"
	// ModeStandard adds slide shapes with text or connectors, table candidates and print areas.
	ModeStandard Mode = "standard"
	// ModeVerbose reads everything, including shape dimensions and decorative shapes.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a flag value to a Mode. An empty value is ModeStandard.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight, ModeStandard, ModeVerbose:
		return Mode(s), nil
	case "":
		return ModeStandard, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", s)
	}
}

// Options configures inspection behavior.
type Options struct {
	// Mode specifies the inspection mode (light, standard, verbose).
	Mode Mode
	// IncludeMerges specifies whether to include merged cell ranges.
	// If nil, defaults to false for light mode, true otherwise.
	IncludeMerges *bool
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePrintAreas *bool
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeMerges returns whether to include merged cell ranges.
func (o Options) ShouldIncludeMerges() bool {
	if o.IncludeMerges != nil {
		return *o.IncludeMerges
	}
	return o.Mode != ModeLight
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode != ModeLight
}

// ShouldIncludeShapes returns whether slide shapes are read.
func (o Options) ShouldIncludeShapes() bool {
	return o.Mode != ModeLight
}
