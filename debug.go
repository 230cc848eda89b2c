package glimpse

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// logger receives debug-mode diagnostics. Release mode logs nothing.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil)).With("lib", "glimpse")

// SetLogger replaces the package logger. Nil restores the stderr default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, nil)).With("lib", "glimpse")
	}
	logger = l
}

// globalDebug enables tree checks on AddPane. It is set by any Drawable in
// debug mode, since panes are not tied to a drawable until attached.
var globalDebug bool

// debugStats holds per-frame timing. Only populated in debug mode.
type debugStats struct {
	prefSizeTime time.Duration
	boundsTime   time.Duration
	paintTime    time.Duration
	paneCount    int
}

// debugLog writes one frame's stats.
func debugLog(stats debugStats) {
	total := stats.prefSizeTime + stats.boundsTime + stats.paintTime
	logger.Info("frame",
		"prefsize", stats.prefSizeTime,
		"bounds", stats.boundsTime,
		"paint", stats.paintTime,
		"total", total,
		"panes", stats.paneCount,
	)
}

// debugCheckDisposed panics when a disposed pane is used in a tree
// operation. Callers skip it outside debug mode.
func debugCheckDisposed(p *Pane, op string) {
	if p.isDisposed {
		panic(fmt.Sprintf("glimpse debug: %s on disposed pane %q (ID was %d)", op, p.Name, p.ID))
	}
}

// debugCheckTreeDepth warns if the subtree under p is deeper than the
// threshold. Panes do not track their parent, so depth is measured downward
// from the newly attached child.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(p *Pane) {
	if depth := subtreeDepth(p); depth > debugMaxTreeDepth {
		logger.Warn("subtree depth exceeds threshold",
			"pane", p.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

func subtreeDepth(p *Pane) int {
	deepest := 0
	p.children.ForEach(func(c *Child) {
		deepest = max(deepest, subtreeDepth(c.Pane))
	})
	return deepest + 1
}

// debugCheckChildCount warns if a pane has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(p *Pane) {
	if n := p.children.Len(); n > debugMaxChildCount {
		logger.Warn("child count exceeds threshold",
			"pane", p.Name, "children", n, "threshold", debugMaxChildCount)
	}
}

// countPanes returns the number of panes in p's subtree, p included.
func countPanes(p *Pane) int {
	n := 1
	p.children.ForEach(func(c *Child) {
		n += countPanes(c.Pane)
	})
	return n
}
