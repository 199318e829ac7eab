package assets

// DepthLore holds atmospheric snippets shown on arrival. Index 0 is used for
// depth 1; deeper levels past the end reuse the last entry.
var DepthLore = [][]string{
	{
		"The air is still. Somewhere far below, something drips.",
		"Scratched into the doorframe: 'it only sees what it sees'.",
	},
	{
		"The walls here are damp and faintly warm.",
		"You hear a wet shuffle that stops when you stop.",
	},
	{
		"Old lamp brackets line the corridor. None of them hold a lamp.",
		"A trail of chalk arrows points back the way you came.",
	},
	{
		"The stone is smoother here, as if worn by many careful hands.",
		"Every room you pass feels slightly larger on the inside.",
	},
}

// LoreFor returns the snippets for depth (1-based).
func LoreFor(depth int) []string {
	i := depth - 1
	if i < 0 {
		i = 0
	}
	if i >= len(DepthLore) {
		i = len(DepthLore) - 1
	}
	return DepthLore[i]
}
