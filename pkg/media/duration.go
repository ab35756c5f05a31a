package media

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ProbeFunc returns a media file's length in whole seconds.
type ProbeFunc func(target string) (int, error)

// DurationCache memoizes formatted video durations per video ID. Entries
// expire after the TTL; probe failures are not cached. Concurrent first-reads
// of the same ID may both probe, which is wasteful but harmless since the
// results agree.
type DurationCache struct {
	ttl   time.Duration
	probe ProbeFunc

	mu      sync.Mutex
	entries map[uint]entry
}

type entry struct {
	value   string
	expires time.Time
}

func NewDurationCache(ttl time.Duration, probe ProbeFunc) *DurationCache {
	if probe == nil {
		probe = FFProbeDuration(30 * time.Second)
	}
	return &DurationCache{
		ttl:     ttl,
		probe:   probe,
		entries: make(map[uint]entry),
	}
}

// Get returns the "m:ss" duration for the video, probing target on a cache
// miss. The error is the probe's; callers are expected to degrade, not fail.
func (dc *DurationCache) Get(videoID uint, target string) (string, error) {
	dc.mu.Lock()
	if e, ok := dc.entries[videoID]; ok && time.Now().Before(e.expires) {
		dc.mu.Unlock()
		return e.value, nil
	}
	dc.mu.Unlock()

	seconds, err := dc.probe(target)
	if err != nil {
		return "", err
	}
	value := FormatDuration(seconds)

	dc.mu.Lock()
	dc.entries[videoID] = entry{value: value, expires: time.Now().Add(dc.ttl)}
	dc.mu.Unlock()

	return value, nil
}

// FormatDuration renders whole seconds as "m:ss".
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FFProbeDuration shells out to ffprobe, which reads both local paths and
// HTTP URLs. The timeout bounds the whole probe.
func FFProbeDuration(timeout time.Duration) ProbeFunc {
	return func(target string) (int, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cmd := exec.CommandContext(ctx, "ffprobe",
			"-v", "error",
			"-show_entries", "format=duration",
			"-of", "default=noprint_wrappers=1:nokey=1",
			target,
		)
		out, err := cmd.Output()
		if err != nil {
			return 0, fmt.Errorf("ffprobe %s: %w", target, err)
		}

		seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
		if err != nil {
			return 0, fmt.Errorf("ffprobe %s: bad duration %q", target, out)
		}
		return int(seconds), nil
	}
}
