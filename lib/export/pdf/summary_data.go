package pdfexport

import (
	hiringhandler "helpdesk-backend/lib/hiring"
	apperrors "helpdesk-backend/lib/utils/app-errors"
	hiringapimodels "helpdesk-backend/models/api/hiring"
)

// SummaryData данные процесса найма для сводки
type SummaryData struct {
	Request   hiringapimodels.RequestView
	Approvals []hiringapimodels.ApprovalView
	Resumes   []hiringapimodels.ResumeView
	Interview hiringapimodels.InterviewDetailsView
	Screening *hiringapimodels.HRScreeningView
	Loa       *hiringapimodels.LoaView
}

func collectSummary(hiring hiringhandler.Provider, request hiringapimodels.RequestView) (data SummaryData, err error) {
	data.Request = request
	requestID := request.ID
	if data.Approvals, err = hiring.ListApprovals(requestID); err != nil {
		return data, err
	}
	if data.Resumes, err = hiring.ListResumes(requestID); err != nil {
		return data, err
	}
	if data.Interview, err = hiring.GetInterviewDetails(requestID); err != nil {
		return data, err
	}
	screening, err := hiring.GetScreeningDetails(requestID)
	switch {
	case err == nil:
		data.Screening = &screening
	case !apperrors.Is(err, apperrors.KindNotFound):
		return data, err
	}
	loa, err := hiring.GetLOADetails(requestID)
	switch {
	case err == nil:
		data.Loa = &loa
	case !apperrors.Is(err, apperrors.KindNotFound):
		return data, err
	}
	return data, nil
}
