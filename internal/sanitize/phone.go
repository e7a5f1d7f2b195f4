package sanitize

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrNotDirectChat = errors.New("not a direct chat")
)

const (
	minPhoneDigits = 8
	maxPhoneDigits = 15
)

// NormalizePhone turns a gateway JID such as "5511999998888:12@s.whatsapp.net"
// into canonical digits. Group, broadcast and newsletter JIDs are rejected with
// ErrNotDirectChat.
func NormalizePhone(jid string) (string, error) {
	jid = strings.TrimSpace(jid)
	if jid == "" {
		return "", ErrInvalidPhone
	}

	user, server, hasServer := strings.Cut(jid, "@")
	if hasServer {
		switch server {
		case "g.us", "broadcast", "newsletter":
			return "", ErrNotDirectChat
		}
	}
	if user == "status" {
		return "", ErrNotDirectChat
	}

	user, _, _ = strings.Cut(user, ":")

	var b strings.Builder
	for _, r := range user {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return "", ErrInvalidPhone
		}
	}

	digits := b.String()
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return "", ErrInvalidPhone
	}
	return digits, nil
}

// JID formats canonical digits back into a direct-chat address.
func JID(phone string) string {
	return phone + "@s.whatsapp.net"
}
