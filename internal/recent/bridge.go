package recent

import "github.com/romashorodok/room-directory/pkg/protocol"

// Bridge forwards recent-list actions to their collaborators untouched.
type Bridge struct {
	deleteEntry   protocol.DeleteEntryFunc
	dialInSummary protocol.DialInSummaryFunc
}

func NewBridge(deleteEntry protocol.DeleteEntryFunc, dialInSummary protocol.DialInSummaryFunc) *Bridge {
	return &Bridge{
		deleteEntry:   deleteEntry,
		dialInSummary: dialInSummary,
	}
}

func (b *Bridge) DeleteEntry(entryID string) {
	b.deleteEntry(entryID)
}

// RequestDialInSummary hands the entry's url to the dial-in collaborator.
func (b *Bridge) RequestDialInSummary(entry Entry) {
	b.dialInSummary(entry.URL)
}
