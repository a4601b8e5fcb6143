package main

// uiMode is the top-level input mode of the application. Exactly one
// mode owns the keyboard at any time.
type uiMode int

const (
	modeView uiMode = iota
	modeCommand
	modeTRDrawer
)

type uiState struct {
	mode uiMode

	// Transient footer message, cleared by a sequence-checked timer.
	notice    string
	noticeSeq int

	// TR drawer widget state, active in modeTRDrawer.
	drawer trDrawer

	drawerOpen bool
}
