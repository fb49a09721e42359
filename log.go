package tuicore

import (
	"log/slog"
	"os"
)

// devLogger is the package's dev-mode diagnostic logger. Structured
// logging is an ambient concern every complete implementation carries
// regardless of the Non-goals scoping out app-facing observability
// (SPEC_FULL.md §10) — grounded on cogentcore-core being the one pack
// member that exercises any logging facility, via log/slog.
var devLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// SetLogger replaces the package-wide dev logger, e.g. to route warnings
// into a host application's own structured logging pipeline.
func SetLogger(l *slog.Logger) {
	if l != nil {
		devLogger = l
	}
}

// warnOnce deduplicates a dev-mode warning by key so a pathological tree
// (e.g. a dropdown anchored to a missing id on every frame) doesn't spam
// stderr once per render.
var warnedKeys = make(map[string]struct{})

func warnOnce(key, msg string, args ...any) {
	if _, seen := warnedKeys[key]; seen {
		return
	}
	warnedKeys[key] = struct{}{}
	devLogger.Warn(msg, args...)
}

// warnMissingAnchor reports a dropdown/tooltip whose anchorId has no entry
// in the IdRectIndex, deduplicated per (dropdownId, anchorId) pair.
func warnMissingAnchor(dropdownID, anchorID string) {
	warnOnce(dropdownID+"\x00"+anchorID, "overlay anchor not found",
		"dropdownId", dropdownID, "anchorId", anchorID)
}
