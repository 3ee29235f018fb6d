package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

type CORSMiddleware struct {
	cors *cors.Cors
}

func NewCORSMiddleware() *CORSMiddleware {
	return &CORSMiddleware{
		cors: cors.AllowAll(),
	}
}

// CORS answers preflight requests and stamps the allow-origin headers so
// browser frontends on any origin can call the API.
func (m *CORSMiddleware) CORS(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}
