package dto

// Hasil upload yang dikembalikan ke panel admin.
type UploadImageResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Body untuk DELETE /api/upload.
type DeleteImageRequest struct {
	ImageID string `json:"image_id"`
}
