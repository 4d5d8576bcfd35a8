// Package dialog implements the modal dialog shared by every editor of a
// workspace. It is the only channel for confirmations and error reports.
//
// The dialog is a two-state machine: closed and open. Opening always starts
// from defaults, so callbacks of a previous dialog never fire.
package dialog

import (
	"context"
	"sync"
)

const (
	DefaultTitle      = "Notice"
	DefaultFirstText  = "OK"
	DefaultSecondText = "Cancel"

	ClassVisible = "d-block"
	ClassHidden  = "d-none"
)

// Callback runs when a button is clicked. It may open a follow-up dialog.
type Callback func(ctx context.Context)

// Button selects one of the two dialog buttons.
type Button int

const (
	First Button = iota
	Second
)

// Settings describes a dialog. Zero fields keep the default.
type Settings struct {
	Title string
	Body  string

	FirstText  string
	FirstClass string
	OnFirst    Callback

	SecondText  string
	SecondClass string
	OnSecond    Callback

	OnClosed     func()
	ResetOnClose bool
}

// ButtonView is the rendered state of one button.
type ButtonView struct {
	Text    string
	Class   string
	Visible bool
}

// View is a copy of the dialog state for rendering.
type View struct {
	Open   bool
	Title  string
	Body   string
	First  ButtonView
	Second ButtonView
}

type Dialog struct {
	mu   sync.Mutex
	open bool
	s    Settings
}

func New() *Dialog {
	return &Dialog{s: defaults()}
}

func defaults() Settings {
	return Settings{
		Title:       DefaultTitle,
		FirstText:   DefaultFirstText,
		FirstClass:  ClassVisible,
		SecondText:  DefaultSecondText,
		SecondClass: ClassVisible,
	}
}

// OpenWith resets the dialog, applies the non-zero settings and opens it.
func (d *Dialog) OpenWith(s Settings) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := defaults()
	if s.Title != "" {
		next.Title = s.Title
	}
	if s.Body != "" {
		next.Body = s.Body
	}
	if s.FirstText != "" {
		next.FirstText = s.FirstText
	}
	if s.FirstClass != "" {
		next.FirstClass = s.FirstClass
	}
	if s.OnFirst != nil {
		next.OnFirst = s.OnFirst
	}
	if s.SecondText != "" {
		next.SecondText = s.SecondText
	}
	if s.SecondClass != "" {
		next.SecondClass = s.SecondClass
	}
	if s.OnSecond != nil {
		next.OnSecond = s.OnSecond
	}
	if s.OnClosed != nil {
		next.OnClosed = s.OnClosed
	}
	if s.ResetOnClose {
		next.ResetOnClose = true
	}

	d.s = next
	d.open = true
}

// ShowSimple opens a plain notice. The second button is hidden unless
// showSecond is set.
func (d *Dialog) ShowSimple(body, title string, showSecond bool) {
	s := Settings{Title: title, Body: body}
	if !showSecond {
		s.SecondClass = ClassHidden
	}
	d.OpenWith(s)
}

// Notify is ShowSimple with the default title and one button.
func (d *Dialog) Notify(body string) {
	d.ShowSimple(body, "", false)
}

// Confirm opens a two-button dialog that runs onConfirm on the first button.
func (d *Dialog) Confirm(body string, onConfirm Callback) {
	d.OpenWith(Settings{Body: body, OnFirst: onConfirm})
}

// Click closes the dialog and then runs the button's callback. The callback
// may reopen the dialog with new settings.
func (d *Dialog) Click(ctx context.Context, b Button) {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return
	}
	cb := d.s.OnFirst
	if b == Second {
		cb = d.s.OnSecond
	}
	d.open = false
	if d.s.ResetOnClose {
		d.s = defaults()
	}
	d.mu.Unlock()

	if cb != nil {
		cb(ctx)
	}
}

// Dismiss closes the dialog from its close icon: the dialog is reset and
// OnClosed, if any, runs.
func (d *Dialog) Dismiss() {
	d.mu.Lock()
	onClosed := d.s.OnClosed
	d.s = defaults()
	d.open = false
	d.mu.Unlock()

	if onClosed != nil {
		onClosed()
	}
}

// Reset restores defaults and closes the dialog without running callbacks.
func (d *Dialog) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.s = defaults()
	d.open = false
}

func (d *Dialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

func (d *Dialog) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return View{
		Open:   d.open,
		Title:  d.s.Title,
		Body:   d.s.Body,
		First:  ButtonView{Text: d.s.FirstText, Class: d.s.FirstClass, Visible: d.s.FirstClass != ClassHidden},
		Second: ButtonView{Text: d.s.SecondText, Class: d.s.SecondClass, Visible: d.s.SecondClass != ClassHidden},
	}
}
