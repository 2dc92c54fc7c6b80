package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		if fn != nil {
			f.translate = fn
		}
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("GIF Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Input"))
	f.row(&b, "Directory", s.Input.Dir)
	f.row(&b, "Images", fmt.Sprintf("%d", len(s.Input.Frames)))
	b.WriteString("\n")
	for i, name := range s.Input.Frames {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	if len(s.Input.Frames) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	loop := t("Infinite")
	if s.Settings.Loop > 0 {
		loop = fmt.Sprintf("%d", s.Settings.Loop)
	}
	f.row(&b, "Loop", loop)
	f.row(&b, "Frame Delay", fmt.Sprintf("%d ms", s.Settings.DelayMs))
	if s.Settings.AddName {
		f.row(&b, "Labels", t("Enabled"))
		f.row(&b, "Font", fmt.Sprintf("%s (%.0f pt)", s.Settings.FontPath, s.Settings.FontSize))
	} else {
		f.row(&b, "Labels", t("Disabled"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	f.row(&b, "File", s.Output.Path)
	if s.Output.Renamed {
		f.row(&b, "Note", t("The .gif extension was added automatically"))
	}
	f.row(&b, "Frames", fmt.Sprintf("%d", s.Output.FrameCount))
	f.row(&b, "Duration", fmt.Sprintf("%d ms", s.Output.DurationMs))
	f.row(&b, "File Size", formatBytes(s.Output.FileSize))
	b.WriteString("\n")

	b.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		footer += fmt.Sprintf(" (gifmaker %s)", f.version)
	}
	b.WriteString(footer + "\n")

	return b.String()
}

func (f *MarkdownFormatter) row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- **%s**: %s\n", f.translate(label), value)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
