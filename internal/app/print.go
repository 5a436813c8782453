package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/gallery"
	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/theme"
)

// Print writes the page once, starting at section from. There is no scroll
// capability, so the tracker runs in manual-only mode and the active
// section is exactly the one navigated to.
func Print(w io.Writer, cfg *config.Config, site *content.Site, mode theme.Mode, width int, from nav.Section) error {
	if cfg == nil {
		return errNilConfig
	}
	if site == nil {
		return errNilContent
	}

	layout := renderPage(site, gallery.NewMarkdown(), width, -1)
	tracker := nav.NewTracker(offsetsFrom(cfg), nil)
	for _, s := range nav.Sections {
		tracker.Register(s, func() (nav.Extent, bool) { return layout.extent(s) })
	}
	tracker.Mount()
	tracker.Navigate(from)

	lines := strings.Split(layout.content, "\n")
	if e, ok := layout.extent(tracker.Active()); ok {
		lines = lines[min(e.Top, len(lines)):]
	}

	header := renderHeaderBar(width, site.Profile.Name, buildHeaderItems(width, tracker.Active(), width < cfg.UI.CompactWidth, mode))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
