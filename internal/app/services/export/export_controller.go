package export

import (
	"context"
	"fmt"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type ExportController struct {
	Log           *zap.Logger
	ExportUsecase contracts.ExportUsecase
}

func NewExportController(logger *zap.Logger, exportUsecase contracts.ExportUsecase) *ExportController {
	return &ExportController{
		Log:           logger,
		ExportUsecase: exportUsecase,
	}
}

// ExportMyRecord streams the session patient's record as a PDF download.
// When the patient record does not exist the export finishes with no content.
func (ctrl *ExportController) ExportMyRecord(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	document, err := ctrl.ExportUsecase.ExportPatientRecord(ctx, session, session.PatientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if document == nil {
		w.WriteHeader(constvars.StatusNoContent)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", constvars.ExportDocumentFileName))
	w.Header().Set(constvars.HeaderContentLength, strconv.Itoa(len(document)))
	w.WriteHeader(constvars.StatusOK)
	w.Write(document)
}
