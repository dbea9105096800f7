package tui

import "github.com/loomos/loomshell/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgDockLoaded is sent when the pinned apps are resolved.
type MsgDockLoaded struct {
	Pinned []*domain.AppDefinition
}

func (MsgDockLoaded) sealed() {}

// MsgLaunchRecorded is sent after a launch is stored in the usage statistics.
type MsgLaunchRecorded struct {
	AppID string
}

func (MsgLaunchRecorded) sealed() {}

// MsgFadeDone is sent when the dismiss animation of a card ends.
type MsgFadeDone struct {
	InstanceID string
}

func (MsgFadeDone) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
