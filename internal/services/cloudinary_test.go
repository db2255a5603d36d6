package services

import (
	"testing"

	"github.com/Ri4dH/EcoTrack/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewCloudinaryService_MissingConfig(t *testing.T) {
	_, err := NewCloudinaryService(&config.Config{})
	assert.Error(t, err)
}

func TestNewCloudinaryService_PartialConfig(t *testing.T) {
	_, err := NewCloudinaryService(&config.Config{
		CloudinaryCloudName: "demo",
		CloudinaryAPIKey:    "key",
	})
	assert.Error(t, err)
}
