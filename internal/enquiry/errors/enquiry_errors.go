package enquiryerrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var ErrEnquiryNotFound = apperror.New(
	apperror.CodeNotFound,
	"Enquiry not found",
	http.StatusNotFound,
)
