package xlsnap

// Options holds configuration for a Renderer.
type Options struct {
	maxColumns   int
	maxRows      int
	fontFamilies []string
}

func defaultOptions() *Options {
	return &Options{
		maxColumns:   20,
		maxRows:      50,
		fontFamilies: defaultFontFamilies(),
	}
}

// defaultFontFamilies is the ordered typeface preference chain. The last
// entry is a generic family the host font subsystem can always resolve.
func defaultFontFamilies() []string {
	return []string{"Segoe UI", "Helvetica", "Arial", "DejaVu Sans", "sans-serif"}
}

// Option configures the Renderer.
type Option func(*Options)

// WithMaxColumns bounds how many columns of the used range are rendered
// (default: 20).
func WithMaxColumns(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxColumns = n
		}
	}
}

// WithMaxRows bounds how many rows of the used range are rendered
// (default: 50).
func WithMaxRows(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxRows = n
		}
	}
}

// WithFontFamilies replaces the typeface preference chain. Families are
// tried in order; the final entry should be a generic family such as
// "sans-serif" so resolution always terminates.
func WithFontFamilies(families ...string) Option {
	return func(o *Options) {
		if len(families) > 0 {
			o.fontFamilies = families
		}
	}
}
