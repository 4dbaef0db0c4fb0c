package domain

import "fmt"

// BuildMessageURL builds a shareable t.me link for a sent message.
//
// A known public username always wins: t.me/{username}/{id} is valid for any
// peer that has one. Without a username the link falls back to the internal
// t.me/c/{id}/{id} form. For direct messages that form has no public web
// view; the shape is kept anyway so outputs stay uniform.
func BuildMessageURL(peer Peer, messageID int, username string) string {
	if username != "" {
		return fmt.Sprintf("https://t.me/%s/%d", username, messageID)
	}

	switch peer.Kind {
	case PeerChannel:
		return fmt.Sprintf("https://t.me/c/%d/%d", peer.ID, messageID)
	case PeerGroup:
		return fmt.Sprintf("https://t.me/c/%d/%d", peer.ID, messageID)
	default:
		// PeerUser: not navigable, see doc comment
		return fmt.Sprintf("https://t.me/c/%d/%d", peer.ID, messageID)
	}
}
