package salarysliperrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrSlipNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary slip not found",
		http.StatusNotFound,
	)
	ErrPDFNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"salary slip document has not been generated",
		http.StatusNotFound,
	)
	ErrPDFRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"salary slip document rendering failed",
		http.StatusInternalServerError,
	)
)
