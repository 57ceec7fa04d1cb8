// Command function runs the API as a Google Cloud Functions HTTP function.
// Locally, set FUNCTION_TARGET=LegalLens so routes are served from the root.
package main

import (
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"legallens/internal/bootstrap"
	"legallens/internal/shared/config"
	"legallens/internal/shared/telemetry"
)

// FunctionName is the entry point name used at deploy time.
const FunctionName = "LegalLens"

var (
	buildOnce sync.Once
	handler   http.Handler
	buildErr  error
)

func init() {
	functions.HTTP(FunctionName, LegalLens)
}

// LegalLens serves the API routes. Dependencies are built on the first
// request and reused while the instance stays warm.
func LegalLens(w http.ResponseWriter, r *http.Request) {
	buildOnce.Do(func() {
		app, err := bootstrap.Build(config.Load())
		if err != nil {
			buildErr = err
			return
		}
		handler = app.Router
	})
	if buildErr != nil {
		telemetry.Error("function.bootstrap_failed", map[string]any{"err": buildErr.Error()})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Unexpected server error"}`))
		return
	}
	handler.ServeHTTP(w, r)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := funcframework.Start(port); err != nil {
		log.Fatalf("funcframework.Start: %v", err)
	}
}
