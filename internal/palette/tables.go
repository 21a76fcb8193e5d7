package palette

// Blue is the enemy palette of the bouncing-swarm demo.
var Blue = Must(
	"#F0F8FF", "#F0FFFF", "#E0FFFF", "#CAF0F8",
	"#DBEAFE", "#B0E0E6", "#C1DFF0", "#BFDBFE",
	"#ADD8E6", "#AECBFA", "#93C5FD", "#87CEFA",
	"#60A5FA", "#6495ED", "#3B82F6", "#4169E1",
	"#2563EB", "#1E90FF", "#1D4ED8", "#00BFFF",
	"#1E40AF", "#5F9EA0", "#1E3A8A", "#191970",
	"#00008B", "#0000CD", "#0000FF", "#6A5ACD",
	"#7B68EE", "#483D8B", "#4682B4", "#B0C4DE",
)

// Pitch-class palettes, indexed by midi % 12.
var (
	Rainbow = Must(
		"#ff4b4b", // red
		"#ff914b", // orange
		"#ffc94b", // yellow
		"#d4ff4b", // yellow-green
		"#7dff4b", // green
		"#4bff91", // teal-green
		"#4bffd4", // aqua
		"#4bc9ff", // sky blue
		"#4b91ff", // blue
		"#7d4bff", // indigo
		"#c94bff", // violet
		"#ff4bd4", // magenta-pink
	)

	BlueScale = Must(
		"#d0e7ff", "#a8cfff", "#80b7ff", "#589fff",
		"#3187ff", "#096fff", "#0060e6", "#0052cc",
		"#0044b3", "#003699", "#002880", "#001a66",
	)

	Red = Must(
		"#ffd6d6", "#ffb3b3", "#ff8f8f", "#ff6b6b",
		"#ff4747", "#ff2323", "#e60000", "#cc0000",
		"#b30000", "#990000", "#800000", "#660000",
	)

	Cinematic = Must(
		"#4b9bff", "#337fff", "#1a62ff", "#0055cc",
		"#ffaa33", "#ff991a", "#ff8000", "#e67300",
		"#ffe766", "#ffdd33", "#ffd700", "#e6c200",
	)

	Candy = Must(
		"#ff99cc", "#ff66b3", "#ff33aa", "#cc33ff",
		"#9966ff", "#6699ff", "#66ccff", "#66ffff",
		"#66ffcc", "#99ffcc", "#ccffe6", "#ffffff",
	)

	Earth = Must(
		"#7a5230", "#a3753b", "#cfa44e", "#e2c290",
		"#668c3e", "#7abf5c", "#a9e085", "#d4f2b0",
		"#7db9d7", "#4a90a4", "#2f6f87", "#1f4d61",
	)
)

// NamedPalette pairs a display name with its table.
type NamedPalette struct {
	Name   string
	Colors Palette
}

// Named lists the pitch-class palettes in UI cycling order.
var Named = []NamedPalette{
	{"Rainbow", Rainbow},
	{"Blue", BlueScale},
	{"Red", Red},
	{"Cinematic", Cinematic},
	{"Candy", Candy},
	{"Earth", Earth},
}

// Lookup finds a named palette, case-sensitively.
func Lookup(name string) (Palette, bool) {
	for _, np := range Named {
		if np.Name == name {
			return np.Colors, true
		}
	}
	return nil, false
}
