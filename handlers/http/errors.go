package httpHandler

import (
	"errors"
	"net/http"
	"strconv"

	"cafe-ledger/apperrors"

	"github.com/gin-gonic/gin"
)

var statusByKind = map[apperrors.Kind]int{
	apperrors.MissingField:      http.StatusBadRequest,
	apperrors.InvalidEnum:       http.StatusBadRequest,
	apperrors.InvalidDate:       http.StatusBadRequest,
	apperrors.InvalidAmount:     http.StatusBadRequest,
	apperrors.NegativeValue:     http.StatusBadRequest,
	apperrors.InvalidEmail:      http.StatusBadRequest,
	apperrors.NoUpdatesProvided: http.StatusBadRequest,
	apperrors.UserNotFound:      http.StatusUnauthorized,
	apperrors.WrongPassword:     http.StatusUnauthorized,
	apperrors.NotFound:          http.StatusNotFound,
	apperrors.ItemNotFound:      http.StatusNotFound,
	apperrors.DuplicateUser:     http.StatusConflict,
	apperrors.DuplicateItem:     http.StatusConflict,
	apperrors.InsufficientStock: http.StatusConflict,
	apperrors.PurchaseCancelled: http.StatusPaymentRequired,
	apperrors.StorageError:      http.StatusInternalServerError,
}

// invalidRequest is used for bodies and path params gin cannot decode.
const invalidRequest = "InvalidRequest"

// StatusFor returns the HTTP status for an error kind.
func StatusFor(kind apperrors.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	message := "internal server error"
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && kind != apperrors.StorageError {
		message = appErr.Message
	}
	c.JSON(StatusFor(kind), gin.H{
		"error": gin.H{"kind": kind, "message": message},
	})
}

func badRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{"kind": invalidRequest, "message": details},
	})
}

// idParam reads the :id path parameter, answering 400 when it is not a positive integer.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
