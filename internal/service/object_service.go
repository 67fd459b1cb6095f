package service

import (
	"context"

	"ai-litepaper-be/internal/dto"
	"ai-litepaper-be/pkg/objectstore"
)

type IObjectService interface {
	// UploadURL hands the client a URL it can PUT a logo image to.
	UploadURL(ctx context.Context) (*dto.UploadURLResponse, error)

	// SetLogoImage normalizes an uploaded URL into the object path stored on
	// the litepaper record.
	SetLogoImage(ctx context.Context, req *dto.SetLogoImageRequest) (*dto.SetLogoImageResponse, error)
}

type objectService struct {
	storage objectstore.ObjectStorage
}

func NewObjectService(storage objectstore.ObjectStorage) IObjectService {
	return &objectService{
		storage: storage,
	}
}

func (s *objectService) UploadURL(ctx context.Context) (*dto.UploadURLResponse, error) {
	url, err := s.storage.UploadURL(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.UploadURLResponse{UploadURL: url}, nil
}

func (s *objectService) SetLogoImage(ctx context.Context, req *dto.SetLogoImageRequest) (*dto.SetLogoImageResponse, error) {
	return &dto.SetLogoImageResponse{
		ObjectPath: s.storage.NormalizePath(req.LogoImageURL),
	}, nil
}
