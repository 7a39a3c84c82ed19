package app

import "time"

type tickMsg time.Time

type focusArea int

const (
	focusSidebar focusArea = iota
	focusPanel
)

type modalPurpose int

const (
	modalPurposeNone modalPurpose = iota
	modalPurposeNewNotebook
	modalPurposeRenameNotebook
	modalPurposeNewNote
	modalPurposeEditNote
)
