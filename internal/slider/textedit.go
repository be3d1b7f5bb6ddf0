package slider

import "github.com/alkime/paramctl/pkg/uictl"

// TextEditor holds a direct text entry session.
type TextEditor struct {
	param uictl.NormalizedParameter

	editing bool
	text    string
	// selected means the whole text is selected and the next typed input
	// replaces it.
	selected bool
}

// NewTextEditor binds a text editor to p.
func NewTextEditor(p uictl.NormalizedParameter) *TextEditor {
	return &TextEditor{param: p}
}

// Editing reports whether a session is open.
func (e *TextEditor) Editing() bool { return e.editing }

// Text returns the text being edited.
func (e *TextEditor) Text() string { return e.text }

// Selected reports whether the whole text is selected.
func (e *TextEditor) Selected() bool { return e.selected }

// Begin opens a session seeded with the formatted current value, fully
// selected. It fails if a session is already open.
func (e *TextEditor) Begin() bool {
	if e.editing {
		return false
	}

	e.editing = true
	e.text = e.param.Format(e.param.Read(), true)
	e.selected = true

	return true
}

// Type inserts s, replacing the text while it is selected.
func (e *TextEditor) Type(s string) {
	if !e.editing {
		return
	}

	if e.selected {
		e.text = ""
		e.selected = false
	}

	e.text += s
}

// SetText replaces the text outright.
func (e *TextEditor) SetText(s string) {
	if !e.editing {
		return
	}

	e.text = s
	e.selected = false
}

// Submit parses the text and commits it in a single gesture. Unparseable
// text, or text submitted while another editor holds the gesture, is
// discarded. The session closes either way. It returns whether a value was
// committed.
func (e *TextEditor) Submit() bool {
	if !e.editing {
		return false
	}

	text := e.text
	e.close()

	value, ok := e.param.Parse(text)
	if !ok {
		return false
	}

	return commit(e.param, unit(value))
}

// Cancel discards the session.
func (e *TextEditor) Cancel() {
	e.close()
}

func (e *TextEditor) close() {
	e.editing = false
	e.text = ""
	e.selected = false
}
