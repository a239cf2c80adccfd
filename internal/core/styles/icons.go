package styles

// Check result icons.
var (
	IconPass = "✔"
	IconWarn = "●"
	IconFail = "✘"
)
