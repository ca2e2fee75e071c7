package models

// Image is one record from the remote listing endpoint. The JSON field names
// follow the picsum.photos /v2/list response shape. Records are read-only and
// held in memory only for the lifetime of a gallery view.
type Image struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}
