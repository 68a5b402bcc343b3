package edit

import "errors"

// ErrNotEditing is returned when the style popover is opened outside edit
// mode.
var ErrNotEditing = errors.New("style popover is only available while editing")

// StylePopover is the per-field popover for editing a text element's style
// override. It has its own Closed/Open state, independent of the field view,
// but can only be opened from the editor view. Selecting a style property
// keeps it open; only the explicit close action dismisses it.
type StylePopover struct {
	open bool
}

// Open shows the popover. Fails when the page is not in edit mode.
func (p *StylePopover) Open(v View) error {
	if v != Editor {
		return ErrNotEditing
	}
	p.open = true
	return nil
}

// Close dismisses the popover. Closing a closed popover is a no-op.
func (p *StylePopover) Close() {
	p.open = false
}

// IsOpen reports the current state.
func (p *StylePopover) IsOpen() bool {
	return p.open
}
