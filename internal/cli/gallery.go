package cli

import (
	"context"
	"fmt"
	"strconv"

	"picshelf/internal/services"
)

// requireSession gates gallery commands on a live session, re-checking the
// stored token the way the original re-checked it on view mount. A stale
// in-memory session is torn down with the session-expired reason.
func (a *App) requireSession(ctx context.Context) bool {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	if !a.session.IsValid(ctx) {
		a.handleForcedLogout(services.ReasonSessionExpired)
		return false
	}
	return true
}

// Gallery fetches the listing and shows its first page. A fetch failure is
// logged and leaves the gallery empty; there is no retry. A fetch that
// resolves after the session was torn down is discarded.
func (a *App) Gallery(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return nil
	}

	images, err := a.listing.Load(ctx)
	if err != nil {
		printlnFn("Could not load images, the gallery is empty.")
		images = nil
	}

	if !a.isLoggedIn() {
		// logged out while the fetch was in flight; do not apply the result
		return nil
	}

	a.view.SetImages(images)
	a.renderPage()
	return nil
}

// Search filters the gallery by author and resets to the first page.
func (a *App) Search(ctx context.Context, term string) error {
	if !a.requireSession(ctx) {
		return nil
	}
	if !a.view.Loaded() {
		printlnFn("Open the gallery first")
		return nil
	}

	a.view.SetSearch(term)
	a.renderPage()
	return nil
}

// Page jumps to the given 1-based page, clamped to the available range.
func (a *App) Page(ctx context.Context, arg string) error {
	if !a.requireSession(ctx) {
		return nil
	}
	if !a.view.Loaded() {
		printlnFn("Open the gallery first")
		return nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: page <n>")
		return nil
	}

	a.view.SetPage(n)
	a.renderPage()
	return nil
}

// Next moves one page forward.
func (a *App) Next(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return nil
	}
	if !a.view.Loaded() {
		printlnFn("Open the gallery first")
		return nil
	}

	a.view.Next()
	a.renderPage()
	return nil
}

// Prev moves one page back.
func (a *App) Prev(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return nil
	}
	if !a.view.Loaded() {
		printlnFn("Open the gallery first")
		return nil
	}

	a.view.Prev()
	a.renderPage()
	return nil
}

// Show prints the details of one visible image.
func (a *App) Show(ctx context.Context, id string) error {
	if !a.requireSession(ctx) {
		return nil
	}
	if !a.view.Loaded() {
		printlnFn("Open the gallery first")
		return nil
	}

	img, ok := a.view.FindByID(id)
	if !ok {
		printlnFn("No image with id", id)
		return nil
	}

	printlnFn(fmt.Sprintf("id:       %s", img.ID))
	printlnFn(fmt.Sprintf("author:   %s", img.Author))
	printlnFn(fmt.Sprintf("size:     %dx%d", img.Width, img.Height))
	printlnFn(fmt.Sprintf("url:      %s", img.URL))
	printlnFn(fmt.Sprintf("download: %s", img.DownloadURL))
	return nil
}

func (a *App) renderPage() {
	visible := a.view.Visible()
	for _, img := range visible {
		printlnFn(fmt.Sprintf("  [%s] %s (%dx%d)", img.ID, img.Author, img.Width, img.Height))
	}

	footer := fmt.Sprintf("Page %d/%d", a.view.Page(), a.view.TotalPages())
	if term := a.view.SearchTerm(); term != "" {
		footer += fmt.Sprintf(", search %q", term)
	}
	if len(visible) == 0 {
		footer = "No images. " + footer
	}
	printlnFn(footer)
}
