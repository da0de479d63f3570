package hubrl

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Header names Docker Hub uses to expose pull-quota counters.
const (
	headerLimit     = "ratelimit-limit"
	headerRemaining = "ratelimit-remaining"
)

// Limit is the pull-quota state reported by the registry.
type Limit struct {
	// Remaining is the number of pulls left in the current window.
	Remaining uint64
	// Total is the window's full allowance.
	Total uint64
}

// String renders the limit as "remaining/total".
func (l Limit) String() string {
	return fmt.Sprintf("%d/%d", l.Remaining, l.Total)
}

// parseQuotaHeader extracts the numeric counter from a rate-limit
// header. The Hub appends window metadata after a semicolon
// (e.g. "100;w=21600"), so the value is truncated at the first ';'
// before integer parsing.
func parseQuotaHeader(h http.Header, key string) (uint64, error) {
	values := h.Values(key)
	if len(values) == 0 {
		return 0, parsingError(fmt.Sprintf("missing %s header", key), nil)
	}

	value := values[0]
	if i := strings.IndexByte(value, ';'); i >= 0 {
		value = value[:i]
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, parsingError(fmt.Sprintf("invalid %s header %q", key, values[0]), err)
	}
	return n, nil
}
