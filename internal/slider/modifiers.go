package slider

// Modifiers is the set of modifier keys held during an input event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
	ModSuper
)

// Has reports whether all of the given modifiers are held.
func (m Modifiers) Has(mods Modifiers) bool { return m&mods == mods }

// Reset reports whether a press should reset to the default value.
func (m Modifiers) Reset() bool { return m&(ModAlt|ModCtrl|ModSuper) != 0 }

// Granular reports whether a drag should move slowly.
func (m Modifiers) Granular() bool { return m.Has(ModShift) }

// Fine reports whether steps should use the finer increment.
func (m Modifiers) Fine() bool { return m.Has(ModShift) }
