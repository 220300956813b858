package model

type UploadImageRequest struct {
	// The image is read from the multipart form, not from this struct.
}

type UploadImageResponse struct {
	Url string `json:"url"`
}

type ClearCacheRequest struct{}

type ClearCacheResponse struct{}
