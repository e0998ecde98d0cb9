package quotationerrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var ErrQuotationNotFound = apperror.New(
	apperror.CodeNotFound,
	"Quotation not found",
	http.StatusNotFound,
)
