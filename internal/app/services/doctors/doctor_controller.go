package doctors

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) GetRecentPatients(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GetRecentPatients(ctx, session.DoctorID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecentPatientsGetSuccess, response)
}

func (ctrl *DoctorController) GetPatientProfileByCNP(w http.ResponseWriter, r *http.Request) {
	request := &requests.SearchPatientRequest{
		CNP: r.URL.Query().Get(constvars.QueryParamCNP),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GetPatientProfileByCNP(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientProfileGetSuccess, response)
}

func (ctrl *DoctorController) SearchPatientByCNP(w http.ResponseWriter, r *http.Request) {
	request := &requests.SearchPatientRequest{
		CNP: r.URL.Query().Get(constvars.QueryParamCNP),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.SearchPatientByCNP(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientSearchSuccess, response)
}
