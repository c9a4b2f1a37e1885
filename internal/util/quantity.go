package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMemSize converts a human-readable memory quantity (e.g. "32G",
// "512M", "2048") to MiB. A bare number is taken as MiB already. Unit
// suffixes are case-insensitive and accept both SI-ish and IEC spellings
// (G, GB, Gi, GiB all mean gibibytes here).
func ParseMemSize(quantity string) (int, error) {
	quantity = strings.TrimSpace(quantity)
	if quantity == "" {
		return 0, fmt.Errorf("empty memory quantity")
	}

	split := len(quantity)
	for i, r := range quantity {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			split = i
			break
		}
	}

	value, err := strconv.ParseFloat(quantity[:split], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid memory quantity %q", quantity)
	}

	unit := strings.ToUpper(strings.TrimSpace(quantity[split:]))
	switch unit {
	case "", "M", "MB", "MI", "MIB":
		return int(value), nil
	case "B":
		return int(value / (1024 * 1024)), nil
	case "K", "KB", "KI", "KIB":
		return int(value / 1024), nil
	case "G", "GB", "GI", "GIB":
		return int(value * 1024), nil
	case "T", "TB", "TI", "TIB":
		return int(value * 1024 * 1024), nil
	default:
		return 0, fmt.Errorf("unknown memory unit %q", unit)
	}
}
