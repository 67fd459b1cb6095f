package dto

type UploadURLResponse struct {
	UploadURL string `json:"uploadURL"`
}

type SetLogoImageRequest struct {
	LogoImageURL string `json:"logoImageURL" validate:"required"`
}

type SetLogoImageResponse struct {
	ObjectPath string `json:"objectPath"`
}
