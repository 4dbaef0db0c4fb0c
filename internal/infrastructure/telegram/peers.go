package telegram

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gotd/td/tg"

	"github.com/xz-dev/telegram-file-uploader/internal/domain"
)

// botAPIChannelOffset is the Bot-API-convention marker for channel IDs:
// a channel with MTProto ID n is addressed as -100...0n (-1000000000000 - n)
const botAPIChannelOffset = int64(1000000000000)

// destinationKind classifies the raw --to value
type destinationKind int

const (
	destSelf destinationKind = iota
	destUsername
	destChannelID
	destChatID
	destUserID
)

// classifyDestination maps a raw destination string to its ID space.
// Numeric IDs follow the Bot API convention: -100-prefixed for channels,
// other negatives for legacy group chats, positives for users. Anything
// non-numeric is a username, with an optional @ prefix.
func classifyDestination(to string) (kind destinationKind, id int64, username string) {
	if to == "me" || to == "self" {
		return destSelf, 0, ""
	}

	if n, err := strconv.ParseInt(to, 10, 64); err == nil {
		switch {
		case n < -botAPIChannelOffset:
			return destChannelID, -n - botAPIChannelOffset, ""
		case n < 0:
			return destChatID, -n, ""
		default:
			return destUserID, n, ""
		}
	}

	return destUsername, 0, strings.TrimPrefix(to, "@")
}

// resolvePeer turns a raw destination into an input peer usable for sending.
// Numeric channel and user IDs need a server round-trip to recover the
// access hash; failures propagate as invalid-destination errors.
func (c *Client) resolvePeer(ctx context.Context, to string) (tg.InputPeerClass, error) {
	kind, id, username := classifyDestination(to)

	switch kind {
	case destSelf:
		return &tg.InputPeerSelf{}, nil

	case destUsername:
		resolved, err := c.resolveUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		return inputPeerFromResolved(resolved)

	case destChannelID:
		channel, err := c.channelByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &tg.InputPeerChannel{ChannelID: channel.ID, AccessHash: channel.AccessHash}, nil

	case destChatID:
		return &tg.InputPeerChat{ChatID: id}, nil

	default:
		user, err := c.userByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &tg.InputPeerUser{UserID: user.ID, AccessHash: user.AccessHash}, nil
	}
}

func (c *Client) resolveUsername(ctx context.Context, username string) (*tg.ContactsResolvedPeer, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	resolved, err := c.api.ContactsResolveUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", username, err)
	}
	return resolved, nil
}

func (c *Client) channelByID(ctx context.Context, channelID int64) (*tg.Channel, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := c.api.ChannelsGetChannels(ctx, []tg.InputChannelClass{
		&tg.InputChannel{ChannelID: channelID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %d: %w", channelID, err)
	}

	for _, chat := range result.GetChats() {
		if channel, ok := chat.(*tg.Channel); ok && channel.ID == channelID {
			return channel, nil
		}
	}
	return nil, fmt.Errorf("channel %d not found", channelID)
}

func (c *Client) userByID(ctx context.Context, userID int64) (*tg.User, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	users, err := c.api.UsersGetUsers(ctx, []tg.InputUserClass{
		&tg.InputUser{UserID: userID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %d: %w", userID, err)
	}

	for _, u := range users {
		if user, ok := u.(*tg.User); ok && user.ID == userID {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user %d not found", userID)
}

func (c *Client) selfUser(ctx context.Context) (*tg.User, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	users, err := c.api.UsersGetUsers(ctx, []tg.InputUserClass{&tg.InputUserSelf{}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch self user: %w", err)
	}

	for _, u := range users {
		if user, ok := u.(*tg.User); ok {
			return user, nil
		}
	}
	return nil, fmt.Errorf("self user not found")
}

// inputPeerFromResolved extracts an input peer from a contacts.resolveUsername
// response, matching the peer against the returned entities for access hashes
func inputPeerFromResolved(resolved *tg.ContactsResolvedPeer) (tg.InputPeerClass, error) {
	switch peer := resolved.Peer.(type) {
	case *tg.PeerChannel:
		for _, chat := range resolved.Chats {
			if channel, ok := chat.(*tg.Channel); ok && channel.ID == peer.ChannelID {
				return &tg.InputPeerChannel{ChannelID: channel.ID, AccessHash: channel.AccessHash}, nil
			}
		}
	case *tg.PeerChat:
		return &tg.InputPeerChat{ChatID: peer.ChatID}, nil
	case *tg.PeerUser:
		for _, u := range resolved.Users {
			if user, ok := u.(*tg.User); ok && user.ID == peer.UserID {
				return &tg.InputPeerUser{UserID: user.ID, AccessHash: user.AccessHash}, nil
			}
		}
	}
	return nil, fmt.Errorf("resolved peer has no usable entity")
}

// entityFromResolved extracts the public username of the resolved peer
func entityFromResolved(resolved *tg.ContactsResolvedPeer) domain.EntityInfo {
	switch peer := resolved.Peer.(type) {
	case *tg.PeerChannel:
		for _, chat := range resolved.Chats {
			if channel, ok := chat.(*tg.Channel); ok && channel.ID == peer.ChannelID {
				return domain.EntityInfo{Username: channel.Username}
			}
		}
	case *tg.PeerUser:
		for _, u := range resolved.Users {
			if user, ok := u.(*tg.User); ok && user.ID == peer.UserID {
				return domain.EntityInfo{Username: user.Username}
			}
		}
	}
	return domain.EntityInfo{}
}

// collectSentMessages extracts the messages created by a grouped send from
// the raw updates response, ordered by ascending message ID
func collectSentMessages(updates tg.UpdatesClass) []domain.SentMessage {
	var updateList []tg.UpdateClass
	switch u := updates.(type) {
	case *tg.Updates:
		updateList = u.Updates
	case *tg.UpdatesCombined:
		updateList = u.Updates
	}

	var messages []domain.SentMessage
	appendMessage := func(m tg.MessageClass) {
		msg, ok := m.(*tg.Message)
		if !ok {
			return
		}
		messages = append(messages, domain.SentMessage{
			ID:   msg.ID,
			Peer: peerFromTG(msg.PeerID),
		})
	}

	for _, update := range updateList {
		switch u := update.(type) {
		case *tg.UpdateNewMessage:
			appendMessage(u.Message)
		case *tg.UpdateNewChannelMessage:
			appendMessage(u.Message)
		}
	}

	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages
}

// peerFromTG converts a wire peer into the domain peer descriptor
func peerFromTG(peer tg.PeerClass) domain.Peer {
	switch p := peer.(type) {
	case *tg.PeerChannel:
		return domain.Peer{Kind: domain.PeerChannel, ID: p.ChannelID}
	case *tg.PeerChat:
		return domain.Peer{Kind: domain.PeerGroup, ID: p.ChatID}
	case *tg.PeerUser:
		return domain.Peer{Kind: domain.PeerUser, ID: p.UserID}
	default:
		return domain.Peer{}
	}
}
