package routers

import (
	"fmt"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/media"

	"github.com/go-chi/chi/v5"
)

func attachMediaRoutes(router chi.Router, middlewares *middlewares.Middlewares, mediaController *media.MediaController) {
	router.With(middlewares.Authenticate).Get("/resolve", mediaController.ResolveReference)
}

// attachStorageProxyRoutes mounts the object streaming endpoint outside the
// versioned prefix; resolved DICOM URLs point straight at it.
func attachStorageProxyRoutes(router *chi.Mux, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, mediaController *media.MediaController) {
	proxyLimiter := middlewaresRateLimiter(internalConfig)
	pattern := fmt.Sprintf("%s/{bucket}/*", internalConfig.Storage.ProxyPathPrefix)
	router.With(middlewares.Authenticate, proxyLimiter.Limit).Get(pattern, mediaController.ProxyObject)
}

func middlewaresRateLimiter(internalConfig *config.InternalConfig) *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(
		internalConfig.Storage.ProxyRequestsPerSec,
		internalConfig.Storage.ProxyRequestsBurst,
	)
}
