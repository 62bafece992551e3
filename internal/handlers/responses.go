package handlers

import (
	"errors"
	"io"
	"net/http"

	"gym_backend/internal/services"
	"gym_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError logs err and maps its service error kind to a response.
// failMessage is shown for unexpected failures, whose details stay in the log.
func respondServiceError(c *gin.Context, err error, logContext, failMessage string) {
	utils.LogError(err, logContext)
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed.", err.Error()))
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, capitalize(err.Error())+".", err.Error()))
	case errors.Is(err, services.ErrConflict):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Request conflicts with existing records.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, failMessage, "Internal error"))
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// bindJSON binds the request body, answering 400 on failure.
func bindJSON(c *gin.Context, req any, logContext string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.LogError(err, logContext+": Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for endpoints whose body may be absent.
// Chunked bodies report no length, so an empty body is detected on read.
func bindOptionalJSON(c *gin.Context, req any, logContext string) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		utils.LogError(err, logContext+": Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return false
	}
	return true
}

// pathID parses the :id path parameter, answering 400 on failure.
func pathID(c *gin.Context, entity string) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+entity+" ID format.", err.Error()))
		return 0, false
	}
	return id, true
}

// searchQuery returns the trimmed ?search= value, or nil when absent.
func searchQuery(c *gin.Context) *string {
	return utils.NewNullString(c.Query("search"))
}
