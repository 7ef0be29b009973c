package records

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecordController struct {
	Log           *zap.Logger
	RecordUsecase contracts.RecordUsecase
}

func NewRecordController(logger *zap.Logger, recordUsecase contracts.RecordUsecase) *RecordController {
	return &RecordController{
		Log:           logger,
		RecordUsecase: recordUsecase,
	}
}

// GetMyRecord serves the full record of the patient bound to the session.
func (ctrl *RecordController) GetMyRecord(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RecordUsecase.GetPatientRecord(ctx, session, session.PatientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordGetSuccess, response)
}

// GetMyConsultationDetail serves one of the session patient's visits with its
// correlated medications and images.
func (ctrl *RecordController) GetMyConsultationDetail(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RecordUsecase.GetConsultationDetail(ctx, session, session.PatientID, consultationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationDetailGetSuccess, response)
}

// GetPatientRecord serves any patient's record to a doctor.
func (ctrl *RecordController) GetPatientRecord(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RecordUsecase.GetPatientRecord(ctx, session, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordGetSuccess, response)
}
