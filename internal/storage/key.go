package storage

import (
	"fmt"
	"strings"
	"time"
)

// ObjectKey lays media out as
// tenants/<tenant>/<direction>/<phone>/<yyyy>/<mm>/<dd>/<folder>/<message_id><ext>.
func ObjectKey(tenantID string, inbound bool, phone, messageID, mimeType string, at time.Time) string {
	direction := "outbox"
	if inbound {
		direction = "inbox"
	}

	at = at.UTC()
	return fmt.Sprintf("tenants/%s/%s/%s/%s/%s/%s/%s/%s%s",
		tenantID,
		direction,
		clean(phone),
		at.Format("2006"),
		at.Format("01"),
		at.Format("02"),
		Folder(mimeType),
		clean(messageID),
		Extension(mimeType),
	)
}

func Folder(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "images"
	case strings.HasPrefix(mimeType, "video/"):
		return "videos"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	default:
		return "documents"
	}
}

func Extension(mimeType string) string {
	mt := strings.ToLower(mimeType)
	switch {
	case strings.Contains(mt, "jpeg"), strings.Contains(mt, "jpg"):
		return ".jpg"
	case strings.Contains(mt, "png"):
		return ".png"
	case strings.Contains(mt, "gif"):
		return ".gif"
	case strings.Contains(mt, "webp"):
		return ".webp"
	case strings.Contains(mt, "mp4"):
		return ".mp4"
	case strings.Contains(mt, "webm"):
		return ".webm"
	case strings.Contains(mt, "ogg"):
		return ".ogg"
	case strings.Contains(mt, "opus"):
		return ".opus"
	case strings.Contains(mt, "mpeg"):
		return ".mp3"
	case strings.Contains(mt, "pdf"):
		return ".pdf"
	case strings.Contains(mt, "docx"), strings.Contains(mt, "wordprocessingml"):
		return ".docx"
	case strings.Contains(mt, "msword"):
		return ".doc"
	default:
		return ".bin"
	}
}

func clean(s string) string {
	return strings.NewReplacer("@", "_", ":", "_", "/", "_").Replace(s)
}
