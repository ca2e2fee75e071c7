package gallery

import (
	"strings"

	"picshelf/internal/models"
)

// DedupeByAuthor keeps at most one image per distinct author, preserving the
// first occurrence in source order.
func DedupeByAuthor(images []models.Image) []models.Image {
	seen := make(map[string]struct{}, len(images))
	unique := make([]models.Image, 0, len(images))
	for _, img := range images {
		if _, ok := seen[img.Author]; ok {
			continue
		}
		seen[img.Author] = struct{}{}
		unique = append(unique, img)
	}
	return unique
}

// Search returns the images whose author contains term, case-insensitively.
// An empty term matches everything.
func Search(images []models.Image, term string) []models.Image {
	if term == "" {
		return images
	}
	term = strings.ToLower(term)
	matched := make([]models.Image, 0, len(images))
	for _, img := range images {
		if strings.Contains(strings.ToLower(img.Author), term) {
			matched = append(matched, img)
		}
	}
	return matched
}

// Paginate returns the slice [(page-1)*pageSize, page*pageSize) of images,
// clamped to the available length. Pages are 1-based; out-of-range pages
// yield an empty slice.
func Paginate(images []models.Image, page, pageSize int) []models.Image {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(images) {
		return nil
	}
	end := start + pageSize
	if end > len(images) {
		end = len(images)
	}
	return images[start:end]
}

// TotalPages returns ceil(count / pageSize).
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize < 1 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// View holds the state of one mounted gallery: the fetched listing, the live
// search term, and the current page. The visible grid is always the result of
// dedupe → search → paginate over the raw listing, recomputed on access.
//
// Note: the dedupe pass runs even when no search term is set, so same-author
// images beyond the first are never shown. That mirrors the reference
// behavior, which reused one filter pass for both concerns; whether it is a
// content policy or an accident is an open question recorded in DESIGN.md.
type View struct {
	pageSize int
	images   []models.Image
	term     string
	page     int
	loaded   bool
}

// NewView constructs an empty View with the given grid page size.
func NewView(pageSize int) *View {
	return &View{pageSize: pageSize, page: 1}
}

// SetImages installs a freshly fetched listing and resets search and page,
// as if the view had just been mounted.
func (v *View) SetImages(images []models.Image) {
	v.images = images
	v.term = ""
	v.page = 1
	v.loaded = true
}

// Reset drops the fetched listing, search term, and page, as if the view had
// been unmounted. The next gallery command must fetch a fresh listing.
func (v *View) Reset() {
	v.images = nil
	v.term = ""
	v.page = 1
	v.loaded = false
}

// Loaded reports whether a listing has been installed. A fetch that resolves
// after the view was torn down must be discarded by the owner instead of
// calling SetImages.
func (v *View) Loaded() bool {
	return v.loaded
}

// SetSearch updates the live search term. Changing the term resets the
// current page to 1.
func (v *View) SetSearch(term string) {
	v.term = term
	v.page = 1
}

// SearchTerm returns the live search term.
func (v *View) SearchTerm() string {
	return v.term
}

func (v *View) filtered() []models.Image {
	return Search(DedupeByAuthor(v.images), v.term)
}

// Visible returns the images of the current page.
func (v *View) Visible() []models.Image {
	return Paginate(v.filtered(), v.page, v.pageSize)
}

// Page returns the 1-based current page.
func (v *View) Page() int {
	return v.page
}

// TotalPages returns the page count of the filtered listing.
func (v *View) TotalPages() int {
	return TotalPages(len(v.filtered()), v.pageSize)
}

// SetPage moves to page n, clamped to [1, TotalPages]. On an empty listing
// the page stays 1.
func (v *View) SetPage(n int) {
	total := v.TotalPages()
	if total == 0 {
		v.page = 1
		return
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	v.page = n
}

// Next advances one page, clamped.
func (v *View) Next() {
	v.SetPage(v.page + 1)
}

// Prev goes back one page, clamped.
func (v *View) Prev() {
	v.SetPage(v.page - 1)
}

// FindByID returns the image with the given id from the filtered listing,
// for detail display.
func (v *View) FindByID(id string) (models.Image, bool) {
	for _, img := range v.filtered() {
		if img.ID == id {
			return img, true
		}
	}
	return models.Image{}, false
}
