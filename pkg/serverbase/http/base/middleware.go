package sbhttpbase

type MiddlewareFunc func(request *Request, next HandleFunc)

func (fn MiddlewareFunc) Register(path, method string) MiddlewareFunc {
	return fn
}

var _ RegistrableMiddleware = MiddlewareFunc(nil)

// RegistrableMiddleware is middleware that gets told which route it is being
// attached to, so stateful interceptors can key their behavior per route.
type RegistrableMiddleware interface {
	Register(path, method string) MiddlewareFunc
}
