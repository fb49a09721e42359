package tuicore

import "github.com/rivo/uniseg"

// renderCodeEditor draws the gutter, source lines, diagnostic squiggles and
// selection fill for a KindCodeEditor. No direct donor precedent — built in
// the donor's explicit per-cell loop style, using uniseg for
// grapheme-aware column math (§4.2 "Code editor ... rendering").
func renderCodeEditor(t *LayoutTree, style Style, b DrawlistBuilder) error {
	cp, ok := t.VNode.Props.(codeEditorProps)
	if !ok {
		return nil
	}
	gutterW := gutterWidth(len(cp.Lines))
	contentX := t.Rect.X + 1 + gutterW + 1
	contentW := t.Rect.W - (contentX - t.Rect.X)
	if contentW < 0 {
		contentW = 0
	}

	gutterStyle := style
	gutterStyle.Dim = true

	diagByLine := make(map[int][]diagnosticMark, len(cp.Diagnostics))
	for _, d := range cp.Diagnostics {
		diagByLine[d.Line] = append(diagByLine[d.Line], d)
	}

	maxLines := t.Rect.H
	for row := 0; row < maxLines && row < len(cp.Lines); row++ {
		y := t.Rect.Y + row
		lineNo := itoa(row + 1)
		pad := gutterW - cellWidth(lineNo)
		for i := 0; i < pad; i++ {
			b.DrawText(t.Rect.X+1+i, y, " ", gutterStyle)
		}
		b.DrawText(t.Rect.X+1+pad, y, lineNo, gutterStyle)

		line := truncateToWidth(cp.Lines[row], contentW)
		b.DrawText(contentX, y, line, style)

		lineStart, lineEnd := lineOffsetRange(cp.Lines, row)
		if overlapsSelection(lineStart, lineEnd, cp.SelectionFrom, cp.SelectionTo) {
			selStyle := style
			selStyle.Inverse = true
			b.FillRect(Rect{X: contentX, Y: y, W: cellWidth(line), H: 1}, ' ', selStyle)
			b.DrawText(contentX, y, line, selStyle)
		}

		for _, d := range diagByLine[row] {
			squiggleStyle := style
			squiggleStyle.Underline = true
			squiggleStyle.UnderlineStyle = UnderlineCurly
			squiggleStyle.UnderlineColor = severityColor(d.Severity)
			width := d.ColEnd - d.ColStart
			if width <= 0 {
				width = 1
			}
			b.FillRect(Rect{X: contentX + d.ColStart, Y: y, W: width, H: 1}, ' ', squiggleStyle)
		}
	}
	return nil
}

func severityColor(sev string) Color {
	switch sev {
	case "error":
		return Named("danger")
	case "warning":
		return Named("warning")
	default:
		return Named("info")
	}
}

// lineOffsetRange returns the [start, end) linear grapheme-offset range
// line `row` occupies, used to test selection overlap against the
// line-major SelectionFrom/SelectionTo offsets.
func lineOffsetRange(lines []string, row int) (int, int) {
	start := 0
	for i := 0; i < row; i++ {
		start += graphemeCount(lines[i]) + 1 // +1 for the newline
	}
	return start, start + graphemeCount(lines[row])
}

func graphemeCount(s string) int {
	n := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		n++
	}
	return n
}

func overlapsSelection(lineStart, lineEnd, selFrom, selTo int) bool {
	if selFrom >= selTo {
		return false
	}
	return lineStart < selTo && selFrom < lineEnd
}

// renderDiffViewer draws hunks in unified form: a header line per hunk (or
// a one-line "collapsed" summary), then add/remove/context lines with their
// conventional +/-/space gutter marker. diffViewerProps.SideBySide is not
// read; there is no side-by-side layout.
func renderDiffViewer(t *LayoutTree, style Style, b DrawlistBuilder) error {
	dp, ok := t.VNode.Props.(diffViewerProps)
	if !ok {
		return nil
	}
	y := t.Rect.Y
	addStyle, removeStyle, headerStyle := style, style, style
	addStyle.FG = Named("success")
	removeStyle.FG = Named("danger")
	headerStyle.Bold = true

	for _, hunk := range dp.Hunks {
		if y >= t.Rect.Bottom() {
			break
		}
		b.DrawText(t.Rect.X, y, truncateToWidth(hunk.Header, t.Rect.W), headerStyle)
		y++
		if hunk.Collapsed {
			summary := collapsedSummary(hunk)
			if y < t.Rect.Bottom() {
				b.DrawText(t.Rect.X, y, truncateToWidth(summary, t.Rect.W), style)
				y++
			}
			continue
		}
		for _, ln := range hunk.Lines {
			if y >= t.Rect.Bottom() {
				break
			}
			marker, lineStyle := " ", style
			switch ln.Kind {
			case "add":
				marker, lineStyle = "+", addStyle
			case "remove":
				marker, lineStyle = "-", removeStyle
			}
			b.DrawText(t.Rect.X, y, marker+truncateToWidth(ln.Text, t.Rect.W-1), lineStyle)
			y++
		}
	}
	return nil
}

func collapsedSummary(h diffHunk) string {
	return "  (" + itoa(len(h.Lines)) + " unchanged lines)"
}

// renderLogsConsole draws the filtered, scrolled window of log entries.
// Filtering by level/source/search is pure string matching, applied before
// the scroll window so ScrollOffset indexes into the filtered set, not the
// raw entry list.
func renderLogsConsole(t *LayoutTree, runtime *RuntimeInstance, style Style, b DrawlistBuilder) error {
	lp, ok := t.VNode.Props.(logsConsoleProps)
	if !ok {
		return nil
	}
	filtered := filterLogEntries(lp)
	offset := lp.ScrollOffset
	if runtime != nil {
		offset = runtime.ScrollY
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(filtered) {
		offset = len(filtered)
	}

	levelStyle := func(level string) Style {
		s := style
		switch level {
		case "error":
			s.FG = Named("danger")
		case "warn":
			s.FG = Named("warning")
		case "debug":
			s.Dim = true
		}
		return s
	}

	y := t.Rect.Y
	for i := offset; i < len(filtered) && y < t.Rect.Bottom(); i++ {
		e := filtered[i]
		line := "[" + e.Level + "] " + e.Source + ": " + e.Message
		b.DrawText(t.Rect.X, y, truncateToWidth(line, t.Rect.W), levelStyle(e.Level))
		y++
		if e.Expanded {
			detail := "    " + e.Message
			if y < t.Rect.Bottom() {
				b.DrawText(t.Rect.X, y, truncateToWidth(detail, t.Rect.W), style)
				y++
			}
		}
	}
	return nil
}

func filterLogEntries(lp logsConsoleProps) []logEntry {
	out := make([]logEntry, 0, len(lp.Entries))
	for _, e := range lp.Entries {
		if lp.LevelFilter != "" && lp.LevelFilter != e.Level {
			continue
		}
		if lp.SourceFilter != "" && lp.SourceFilter != e.Source {
			continue
		}
		if lp.Search != "" && !containsFold(e.Message, lp.Search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsFold(haystack, needle string) bool {
	h, n := []rune(toLower(haystack)), []rune(toLower(needle))
	if len(n) == 0 {
		return true
	}
	for i := 0; i+len(n) <= len(h); i++ {
		match := true
		for j := range n {
			if h[i+j] != n[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func toLower(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r - 'A' + 'a'
		}
	}
	return string(out)
}
