// Package icon renders UI symbols in the user's preferred variant.
//
// Icons can be displayed as emoji, nerd-font glyphs or plain ASCII depending
// on the icons.variant configuration.
package icon

import (
	"github.com/CalebBrendel/mov-cli-openmovies/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// iconDef holds the representations of one symbol across all variants.
type iconDef struct {
	emoji string
	nerd  string
	plain string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the rendered string for an Icon from the registry.
func Get(i Icon) string {
	return icons[i].Get()
}
