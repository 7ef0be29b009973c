package media

import (
	"context"
	"io"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MediaController struct {
	Log          *zap.Logger
	MediaUsecase contracts.MediaUsecase
	Storage      contracts.Storage
	BucketName   string
}

func NewMediaController(logger *zap.Logger, mediaUsecase contracts.MediaUsecase, storage contracts.Storage, bucketName string) *MediaController {
	return &MediaController{
		Log:          logger,
		MediaUsecase: mediaUsecase,
		Storage:      storage,
		BucketName:   bucketName,
	}
}

func (ctrl *MediaController) ResolveReference(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get(constvars.QueryParamURL)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.MediaUsecase.ResolveReference(ctx, rawURL)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MediaResolveSuccess, response)
}

// ProxyObject streams a stored object to the client. DICOM viewers fetch
// through this handler because the upstream store does not serve the files
// with CORS headers browsers accept.
func (ctrl *MediaController) ProxyObject(w http.ResponseWriter, r *http.Request) {
	objectName := chi.URLParam(r, "*")
	if objectName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMediaReferenceInvalid(nil))
		return
	}

	bucketName := chi.URLParam(r, constvars.URLParamBucket)
	if bucketName == "" {
		bucketName = ctrl.BucketName
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	object, contentType, size, err := ctrl.Storage.GetObject(ctx, bucketName, objectName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer object.Close()

	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	w.Header().Set(constvars.HeaderContentType, contentType)
	if size > 0 {
		w.Header().Set(constvars.HeaderContentLength, strconv.FormatInt(size, 10))
	}
	w.WriteHeader(constvars.StatusOK)

	if _, err := io.Copy(w, object); err != nil {
		ctrl.Log.Warn("failed to stream object to client",
			zap.String("bucket", bucketName),
			zap.String("object", objectName),
			zap.Error(err),
		)
	}
}
