package inventorize

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeUnits maps accepted suffixes to their byte multiplier, longest first
// so "KIB" is tried before "B".
var sizeUnits = []struct {
	suffix string
	mult   int64
}{
	{"KIB", 1 << 10}, {"MIB", 1 << 20}, {"GIB", 1 << 30},
	{"KB", 1 << 10}, {"MB", 1 << 20}, {"GB", 1 << 30},
	{"K", 1 << 10}, {"M", 1 << 20}, {"G", 1 << 30},
	{"B", 1},
}

// ParseChunkSize parses a hasher read size such as "128K", "4MiB" or "65536".
// The result must lie in [MinChunkSize, MaxChunkSize].
func ParseChunkSize(text string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(text))
	if upper == "" {
		return 0, fmt.Errorf("empty chunk size")
	}

	digits, mult := upper, int64(1)
	for _, unit := range sizeUnits {
		if rest, ok := strings.CutSuffix(upper, unit.suffix); ok {
			digits, mult = strings.TrimSpace(rest), unit.mult
			break
		}
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chunk size %q", text)
	}
	if n <= 0 || n > MaxChunkSize/mult || n*mult < MinChunkSize {
		return 0, fmt.Errorf("chunk size %q out of range (%s to %s)",
			text, FormatSize(MinChunkSize), FormatSize(MaxChunkSize))
	}
	return int(n * mult), nil
}

// FormatSize renders a byte count with a binary unit suffix
func FormatSize(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
