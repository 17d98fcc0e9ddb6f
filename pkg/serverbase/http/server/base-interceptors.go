package sbhttpserver

import (
	lgzip "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/gzip"
	interceptors_inflight "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/interceptors/in-flight"
	sbhttpbase "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/serverbase/http/base"
)

type BaseInterceptorsConfig struct {
	DisableGzipRequestDecompression bool
	DisableGzipResponseCompression  bool
	DisableLimiter                  bool
}

// GetBaseInterceptors builds the middleware stack shared by all API routes.
func GetBaseInterceptors(cfg BaseInterceptorsConfig, limiter *interceptors_inflight.Interceptor) []sbhttpbase.RegistrableMiddleware {
	ret := []sbhttpbase.RegistrableMiddleware{}

	if !cfg.DisableLimiter && limiter != nil {
		ret = append(ret, limiter.ToHTTP())
	}

	if !cfg.DisableGzipRequestDecompression {
		ret = append(ret, lgzip.HttpServerDecompressRequestInterceptor())
	}

	if !cfg.DisableGzipResponseCompression {
		ret = append(ret, lgzip.HttpServerCompressResponseInterceptor())
	}
	return ret
}
