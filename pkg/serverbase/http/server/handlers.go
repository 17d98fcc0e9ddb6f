package sbhttpserver

import (
	"net/http"
	"strings"

	"github.com/dimfeld/httptreemux"
	log "github.com/sirupsen/logrus"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/http/interceptors"
	sbhttpbase "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/serverbase/http/base"
)

func (instance *Instance) registerHandlers(server Server) error {
	for _, handle := range server.GetHandlers() {
		log.Printf("registering handler %s %s", handle.Method, handle.Path)
		if err := instance.registerHandler(handle); err != nil {
			return err
		}
	}

	return nil
}

func (instance *Instance) createTailMiddlewares(path, method string) []sbhttpbase.MiddlewareFunc {
	return []sbhttpbase.MiddlewareFunc{
		interceptors.HttpServerDefaultContentTypeInterceptor("application/json").Register(path, method),
		exhaustRequest,
		defaultOk,
		interceptors.HttpServerRecoverInterceptor().Register(path, method),
	}
}

func (instance *Instance) registerHandler(handle HandleDescription) error {
	tail := instance.createTailMiddlewares(handle.Path, handle.Method)

	middleware := make([]sbhttpbase.MiddlewareFunc, 0)
	for _, m := range handle.Middleware {
		middleware = append(middleware, m.Register(handle.Path, handle.Method))
	}

	middleware = append(middleware, tail...)

	handler := handle.Handler
	if len(middleware) > 0 {
		handler = ComposeMiddleware(middleware, handle.Handler)
	}

	instance.RegisterHandler(&HandleDescription{
		NotFound: handle.NotFound,
		Path:     handle.Path,
		Method:   handle.Method,
		Handler:  handler,
	})

	return nil
}

func handleWrapper(pathPattern string, handler sbhttpbase.HandleFunc) httptreemux.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		handler(&sbhttpbase.Request{
			PathPattern: pathPattern,
			Writer:      w,
			Request:     r,
			Params:      params,
		})
	}
}

type notFoundHandler struct {
	handler sbhttpbase.HandleFunc
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler(&sbhttpbase.Request{
		Writer:  w,
		Request: r,
	})
}

func (b *Instance) RegisterHandler(handle *HandleDescription) {
	if handle.NotFound {
		b.router.NotFoundHandler = (&notFoundHandler{
			handler: handle.Handler,
		}).ServeHTTP
		return
	}

	switch handle.Method {
	case "*":
		for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
			b.RegisterHandler(&HandleDescription{
				Path:    handle.Path,
				Method:  method,
				Handler: handle.Handler,
			})
		}
	default:
		b.router.Handle(handle.Method, handle.Path, handleWrapper(handle.Path, handle.Handler))
	}

	// Register the trailing-slash variant as well so both spellings route
	// to the same handler.
	if handle.Path[len(handle.Path)-1] != '/' && handle.Method != "*" && !strings.Contains(handle.Path, "*") {
		b.RegisterHandler(&HandleDescription{
			Method:  handle.Method,
			Path:    handle.Path + "/",
			Handler: handle.Handler,
		})
	}
}

func ComposeMiddleware(funcs []sbhttpbase.MiddlewareFunc, base sbhttpbase.HandleFunc) sbhttpbase.HandleFunc {
	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]
		if f == nil {
			continue
		}
		oldBase := base
		base = func(request *sbhttpbase.Request) {
			f(request, oldBase)
		}
	}

	return base
}
