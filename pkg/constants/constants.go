package constants

import "time"

const (
	DefaultPageSize = int64(10)
	MaxPageSize     = int64(100)

	// MaxUploadSize bounds the multipart body on the publish route.
	MaxUploadSize = 1 << 30

	VideoCacheTTL = 10 * time.Minute

	IdentityKey = "actor_id"
)
