// pkg/message/severity.go

package message

// Color is a Discord embed color, encoded decimal-as-string on the wire.
type Color string

const (
	ColorGreen  Color = "5763719"
	ColorYellow Color = "16705372"
	ColorRed    Color = "15548997"
)

// ColorForLevel maps a rule severity level onto one of the three fixed
// tiers: below 5 green, 5 through 7 yellow, above 7 red.
func ColorForLevel(level int) Color {
	switch {
	case level < 5:
		return ColorGreen
	case level <= 7:
		return ColorYellow
	default:
		return ColorRed
	}
}
