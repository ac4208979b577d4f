package handler

import (
	"net/http"
	"sync"

	"visitpazar/config"
	"visitpazar/di"
	"visitpazar/shared/logger"
	"visitpazar/shared/timezone"
)

var (
	app  http.Handler
	once sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the
// first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		timezone.Init(cfg)

		app = di.InitializeService().Handler()
	})

	app.ServeHTTP(w, r)
}
