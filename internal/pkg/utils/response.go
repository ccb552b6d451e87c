package utils

import (
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/responses"
	"casalist-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildDataResponse(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, responses.DataResponse{Data: data})
}

func BuildMessageDataResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.MessageDataResponse{Message: message, Data: data})
}

func BuildMessageResponse(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, responses.MessageResponse{Message: message})
}

func BuildCountResponse(w http.ResponseWriter, count int64) {
	writeJSON(w, constvars.StatusOK, responses.CountResponse{Count: count})
}

func BuildListResponse(w http.ResponseWriter, code int, data interface{}, meta *responses.Meta) {
	writeJSON(w, code, responses.ListResponse{Data: data, Meta: meta})
}

func BuildNoContentResponse(w http.ResponseWriter) {
	w.WriteHeader(constvars.StatusNoContent)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication
	bodyKey := "error"

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		if customErr.BodyKey != "" {
			bodyKey = customErr.BodyKey
		}
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	writeJSON(w, code, map[string]string{bodyKey: clientMessage})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
