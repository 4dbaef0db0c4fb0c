package domain

import "github.com/gotd/td/tg"

// PeerKind enumerates the Telegram ID spaces a message can be addressed in
type PeerKind int

const (
	// PeerChannel is a broadcast channel or supergroup
	PeerChannel PeerKind = iota
	// PeerGroup is a legacy group chat
	PeerGroup
	// PeerUser is a direct message peer
	PeerUser
)

// Peer identifies the chat a message was delivered to
type Peer struct {
	Kind PeerKind
	ID   int64
}

// UploadRequest describes a single upload-and-send invocation
type UploadRequest struct {
	// To is a numeric chat ID, a public username or "me"
	To      string
	Caption string
	Files   []string
}

// UploadedFile is a handle to a file already transferred to Telegram,
// ready to be attached to a message
type UploadedFile struct {
	Name string
	Ref  tg.InputFileClass
}

// SentMessage is one message produced by a grouped send
type SentMessage struct {
	ID   int
	Peer Peer
}

// EntityInfo holds the resolved metadata of a destination chat
type EntityInfo struct {
	Username string
}

// UploadResult aggregates the outcome of an upload; the two slices are
// index-aligned and always the same length
type UploadResult struct {
	MessageURLs []string
	MessageIDs  []int
}
