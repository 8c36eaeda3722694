package tui

// MsgSnapshotChanged is sent when the state file was rewritten outside this
// process; the model reloads the store and re-renders.
type MsgSnapshotChanged struct{}

// MsgExportDone reports the outcome of a spreadsheet export.
type MsgExportDone struct {
	Path string
	Err  error
}
