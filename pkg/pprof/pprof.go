package pprof

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)
	return router
}

// Start serves the profiling endpoints on addr in the background. An empty
// addr leaves profiling off.
func Start(addr string) *http.Server {
	if addr == "" {
		return nil
	}

	srv := &http.Server{Addr: addr, Handler: NewRouter()}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Errorf("pprof server on %s: %v", addr, err)
		}
	}()
	logx.Infof("pprof listening on %s", addr)
	return srv
}
