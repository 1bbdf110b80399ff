package dto

// UploadRequestDTO asks for a presigned upload URL. Kind selects the key
// prefix: "image" for course banners, "resource" for section attachments.
type UploadRequestDTO struct {
	Kind     string `json:"kind" validate:"required,oneof=image resource"`
	Filename string `json:"filename" validate:"required"`
}

// UploadResponseDTO carries the presigned upload grant
type UploadResponseDTO struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}
