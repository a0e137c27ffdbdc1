// Command healthcheck probes a running recipe API and exits non-zero when it
// is not healthy. It is meant for container HEALTHCHECK instructions.
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/models"
)

func main() {
	baseURL := flag.String("url", "http://localhost:5000/api/v1", "base URL of the recipe API")
	timeout := flag.Duration("timeout", 3*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("go-recipe-book-healthcheck")

	if err := probe(utils.NewHTTPClient(*baseURL, *timeout)); err != nil {
		log.Error().Err(err).Str("url", *baseURL).Msg("health check failed")
		os.Exit(1)
	}
}

func probe(client *utils.HTTPClient) error {
	var failure models.ErrorResponse
	resp, err := client.R().SetError(&failure).Get("/health")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return &probeError{status: resp.StatusCode(), message: failure.Error}
	}
	return nil
}
