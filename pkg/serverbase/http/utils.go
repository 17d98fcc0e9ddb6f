package sbhttp

import (
	"encoding/json"
	"net/http"

	lhttp "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/http"
)

func ReturnHttpError(w http.ResponseWriter, err *lhttp.HttpError) {
	if err.Err != nil {
		ReturnError(w, http.StatusInternalServerError, "Internal server error", err.Err)
	} else {
		ReturnError(w, err.Code, err.Message, err)
	}
}

func ReturnError(w http.ResponseWriter, code int, message string, err error) {
	http.Error(w, message, code)
}

func WriteJson(w http.ResponseWriter, code int, result interface{}) error {
	w.Header().Add("content-type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		w.Write([]byte("error serializing response"))
		return err
	}
	return nil
}

func WriteText(w http.ResponseWriter, code int, text string) error {
	w.Header().Set("content-type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, err := w.Write([]byte(text))
	return err
}
