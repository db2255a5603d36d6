package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/Ri4dH/EcoTrack/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService gère les téléversements d'images
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryService crée une instance du service Cloudinary
func NewCloudinaryService(cfg *config.Config) (*CloudinaryService, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryService{cld: cld}, nil
}

// UploadAvatar téléverse un avatar vers Cloudinary
func (s *CloudinaryService) UploadAvatar(ctx context.Context, file multipart.File, userID string, filename string) (string, error) {
	publicID := fmt.Sprintf("avatars/%s", userID)
	overwrite := true

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         "ecotrack/avatars",
		Overwrite:      &overwrite, // Écraser l'ancien avatar
		ResourceType:   "image",
		Format:         "jpg",
		Transformation: "c_fill,g_face,h_500,w_500",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}

	return uploadResult.SecureURL, nil
}

// DeleteImage supprime une image par son public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
