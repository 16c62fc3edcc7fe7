package styles

const (
	// General icons
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"
	InfoIcon    string = "ℹ"

	// Editor widgets
	SelectIcon    string = "▶"
	CheckedBox    string = "[✓]"
	UncheckedBox  string = "[ ]"
	SliderFilled  string = "━"
	SliderEmpty   string = "─"
	SliderHandle  string = "●"
	SeparatorLine string = "─"
)
