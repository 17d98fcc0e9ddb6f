package interceptors_inflight

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	sbhttpbase "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/serverbase/http/base"
)

func newRequest(recorder *httptest.ResponseRecorder) *sbhttpbase.Request {
	return &sbhttpbase.Request{
		PathPattern: "/data",
		Writer:      recorder,
		Request:     httptest.NewRequest("GET", "/data", nil),
	}
}

func TestDisabledLetsEverythingThrough(t *testing.T) {
	interceptor := NewInterceptor(Config{Size: 0})
	middleware := interceptor.ToHTTP()

	for i := 0; i < 10; i++ {
		recorder := httptest.NewRecorder()
		called := false
		middleware(newRequest(recorder), func(request *sbhttpbase.Request) {
			called = true
			request.Writer.WriteHeader(http.StatusOK)
		})
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}
}

func TestNonBlockingRejectsWhenFull(t *testing.T) {
	interceptor := NewInterceptor(Config{Size: 1, Blocking: false})
	middleware := interceptor.ToHTTP()

	var wg sync.WaitGroup
	hold := make(chan struct{})
	inside := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		middleware(newRequest(httptest.NewRecorder()), func(request *sbhttpbase.Request) {
			close(inside)
			<-hold
		})
	}()

	<-inside

	recorder := httptest.NewRecorder()
	called := false
	middleware(newRequest(recorder), func(request *sbhttpbase.Request) {
		called = true
	})
	assert.False(t, called)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)

	close(hold)
	wg.Wait()
}
