package media

import (
	"context"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"net/url"
	"path"
	"strings"
)

type mediaUsecase struct {
	allowedHosts    map[string]bool
	ProxyPathPrefix string
}

func NewMediaUsecase(internalConfig *config.InternalConfig) contracts.MediaUsecase {
	allowedHosts := make(map[string]bool)
	if parsed, err := url.Parse(internalConfig.Storage.MediaPublicHost); err == nil && parsed.Host != "" {
		allowedHosts[parsed.Host] = true
	}
	return &mediaUsecase{
		allowedHosts:    allowedHosts,
		ProxyPathPrefix: internalConfig.Storage.ProxyPathPrefix,
	}
}

// ResolveReference classifies a stored media URL and rewrites DICOM references
// so the browser fetches them through the storage proxy. References hosted
// anywhere else, and plain images, pass through verbatim.
func (uc *mediaUsecase) ResolveReference(ctx context.Context, rawURL string) (*responses.ResolvedMedia, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, exceptions.ErrMediaReferenceInvalid(nil)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, exceptions.ErrMediaReferenceInvalid(err)
	}

	extension := strings.ToLower(path.Ext(parsed.Path))
	if extension != constvars.DicomFileExtension {
		return &responses.ResolvedMedia{
			Kind: constvars.MediaKindImage,
			URL:  rawURL,
		}, nil
	}

	// Only references on an allow-listed host are rewritten; anything else
	// passes through verbatim.
	resolved := rawURL
	if uc.allowedHosts[parsed.Host] {
		resolved = uc.ProxyPathPrefix + parsed.Path
		if parsed.RawQuery != "" {
			resolved += "?" + parsed.RawQuery
		}
	}

	return &responses.ResolvedMedia{
		Kind: constvars.MediaKindDicom,
		URL:  resolved,
	}, nil
}
