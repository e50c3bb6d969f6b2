package util //nolint:revive // package name util hosts small display helpers shared by commands

import "time"

// FormatTTL renders a Redis TTL reply. -1 means the key never expires; any
// other negative value means the key is gone.
func FormatTTL(d time.Duration) string {
	switch {
	case d == -1 || d == -time.Second:
		return "none"
	case d < 0:
		return "expired"
	case d < time.Second:
		return d.Truncate(time.Millisecond).String()
	default:
		return d.Round(time.Second).String()
	}
}
