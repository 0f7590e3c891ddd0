package icon

// Icon identifies one symbol of the registry.
type Icon int

const (
	Progress Icon = iota
	Search
	Success
	Fail
	Link
	Movie
)

var icons = map[Icon]*iconDef{
	Progress: {emoji: "⏳", nerd: "", plain: "..."},
	Search:   {emoji: "🔍", nerd: "", plain: ">"},
	Success:  {emoji: "✅", nerd: "", plain: "+"},
	Fail:     {emoji: "❌", nerd: "", plain: "x"},
	Link:     {emoji: "🔗", nerd: "", plain: "~"},
	Movie:    {emoji: "🎬", nerd: "", plain: "*"},
}
