package sbhttpbase

import (
	"net/http"
)

type HandleFunc func(request *Request)

// HandleStdFunc adapts a plain net/http handler function.
func HandleStdFunc(fn func(w http.ResponseWriter, r *http.Request)) HandleFunc {
	return func(request *Request) {
		fn(request.Writer, request.Request)
	}
}

type HandleDescription struct {
	NotFound bool
	Path     string
	Method   string
	Handler  HandleFunc
}
