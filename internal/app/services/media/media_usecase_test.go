package media

import (
	"context"
	"medrecord-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase() *mediaUsecase {
	internalConfig := &config.InternalConfig{
		Storage: config.Storage{
			MediaPublicHost: "https://firebasestorage.googleapis.com",
			ProxyPathPrefix: "/storage-proxy",
		},
	}
	return NewMediaUsecase(internalConfig).(*mediaUsecase)
}

func TestResolveReference(t *testing.T) {
	uc := newTestUsecase()

	t.Run("Dicom On Known Host Is Rewritten", func(t *testing.T) {
		resolved, err := uc.ResolveReference(context.Background(), "https://firebasestorage.googleapis.com/v0/b/bucket/scan.dcm")
		require.NoError(t, err)
		assert.Equal(t, "dicom", resolved.Kind)
		assert.Equal(t, "/storage-proxy/v0/b/bucket/scan.dcm", resolved.URL)
	})

	t.Run("Dicom Rewrite Keeps Query String", func(t *testing.T) {
		resolved, err := uc.ResolveReference(context.Background(), "https://firebasestorage.googleapis.com/v0/b/bucket/scan.dcm?alt=media&token=abc")
		require.NoError(t, err)
		assert.Equal(t, "dicom", resolved.Kind)
		assert.Equal(t, "/storage-proxy/v0/b/bucket/scan.dcm?alt=media&token=abc", resolved.URL)
	})

	t.Run("Dicom Extension Is Case Insensitive", func(t *testing.T) {
		resolved, err := uc.ResolveReference(context.Background(), "https://firebasestorage.googleapis.com/v0/b/bucket/scan.DCM")
		require.NoError(t, err)
		assert.Equal(t, "dicom", resolved.Kind)
		assert.Equal(t, "/storage-proxy/v0/b/bucket/scan.DCM", resolved.URL)
	})

	t.Run("Dicom On Unknown Host Passes Through", func(t *testing.T) {
		resolved, err := uc.ResolveReference(context.Background(), "https://cdn.example.org/scans/scan.dcm")
		require.NoError(t, err)
		assert.Equal(t, "dicom", resolved.Kind)
		assert.Equal(t, "https://cdn.example.org/scans/scan.dcm", resolved.URL)
	})

	t.Run("Plain Image Passes Through", func(t *testing.T) {
		resolved, err := uc.ResolveReference(context.Background(), "https://firebasestorage.googleapis.com/v0/b/bucket/photo.jpg")
		require.NoError(t, err)
		assert.Equal(t, "image", resolved.Kind)
		assert.Equal(t, "https://firebasestorage.googleapis.com/v0/b/bucket/photo.jpg", resolved.URL)
	})

	t.Run("Empty Reference Is Rejected", func(t *testing.T) {
		resolved, err := uc.ResolveReference(context.Background(), "   ")
		assert.Nil(t, resolved)
		assert.Error(t, err)
	})
}
