package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	PanLeft   key.Binding
	PanRight  key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	WholeSeq  key.Binding
	NextTR    key.Binding
	PrevTR    key.Binding
	TRDrawer  key.Binding
	Measure   key.Binding
	CopyDelta key.Binding
	Command   key.Binding
	Export    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeymap() Keymap {
	return Keymap{
		PanLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "pan right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		WholeSeq: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "whole sequence"),
		),
		NextTR: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next TR"),
		),
		PrevTR: key.NewBinding(
			key.WithKeys("N", "p"),
			key.WithHelp("N", "previous TR"),
		),
		TRDrawer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "TR drawer"),
		),
		Measure: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "measure"),
		),
		CopyDelta: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "copy Δt"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export window"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+d"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k Keymap) bindings() []key.Binding {
	return []key.Binding{
		k.PanLeft, k.PanRight, k.ZoomIn, k.ZoomOut,
		k.WholeSeq, k.NextTR, k.PrevTR, k.TRDrawer,
		k.Measure, k.CopyDelta, k.Command, k.Export,
		k.Help, k.Quit,
	}
}

// Legend renders the compact key hint line for the footer.
func (k Keymap) Legend() string {
	parts := []string{}
	for _, b := range []key.Binding{k.PanLeft, k.PanRight, k.ZoomIn, k.ZoomOut, k.NextTR, k.WholeSeq, k.TRDrawer, k.Measure, k.Help, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
