package handlers

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sdko-org/website-generator/internal/config"
	"github.com/sdko-org/website-generator/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// contentSecurityPolicy allows inline script/style plus the two CDNs the
// generation prompt permits (esm.sh modules, Google Fonts). Framing and
// plugin objects are disallowed outright.
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline' https://esm.sh; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"img-src 'self' data: blob:; " +
	"font-src 'self' data: https://fonts.googleapis.com https://fonts.gstatic.com; " +
	"connect-src 'self'; " +
	"frame-src 'none'; " +
	"object-src 'none'; " +
	"base-uri 'self'"

type RateLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	bytesSent  int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytesSent += n
	return n, err
}

var (
	clients = make(map[string]*RateLimiter)
	mu      sync.Mutex
)

func LoggingMiddleware(logger *logrus.Logger, db *gorm.DB) func(http.Handler) http.Handler {
	logEntry := logger.WithField("component", "http_middleware")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			defer func() {
				duration := time.Since(start)
				fields := logrus.Fields{
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     lrw.statusCode,
					"duration":   duration,
					"client_ip":  getClientIP(r),
					"bytes":      lrw.bytesSent,
					"user_agent": r.UserAgent(),
				}

				logEntry.WithFields(fields).Info("Request processed")

				if db == nil {
					return
				}

				go func() {
					ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
					defer cancel()

					entry := models.AccessLog{
						Timestamp: start,
						Method:    r.Method,
						Path:      r.URL.Path,
						Status:    lrw.statusCode,
						Duration:  duration,
						ClientIP:  getClientIP(r),
						UserAgent: r.UserAgent(),
						BytesSent: lrw.bytesSent,
					}

					if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
						logEntry.WithError(err).Warn("Failed to save access log")
					}
				}()
			}()

			next.ServeHTTP(lrw, r)
		})
	}
}

// RecoveryMiddleware is the catch-all error handler: a panicking handler is
// logged with its path and surfaced as a generic 500 payload.
func RecoveryMiddleware(logger *logrus.Logger) func(http.Handler) http.Handler {
	logEntry := logger.WithField("component", "http_recovery")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logEntry.WithFields(logrus.Fields{
						"path":  r.URL.Path,
						"panic": rec,
					}).Error("Request error")
					writeError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func SecureHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

func RateLimitMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)

			mu.Lock()
			limiter, exists := clients[clientIP]
			if !exists {
				limiter = &RateLimiter{
					limiter: rate.NewLimiter(
						rate.Limit(float64(cfg.RateLimit)/cfg.RateLimitWindow.Seconds()),
						cfg.RateLimit,
					),
				}
				clients[clientIP] = limiter
			}
			limiter.lastSeen = time.Now()
			mu.Unlock()

			if !limiter.limiter.Allow() {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func getClientIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.Header.Get("X-Real-IP")
	}
	if ip == "" {
		var err error
		ip, _, err = net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
	}
	if strings.Contains(ip, ",") {
		parts := strings.Split(ip, ",")
		ip = strings.TrimSpace(parts[0])
	}
	return ip
}

func cleanupClients() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, client := range clients {
			if time.Since(client.lastSeen) > 3*time.Minute {
				delete(clients, ip)
			}
		}
		mu.Unlock()
	}
}

func init() {
	go cleanupClients()
}
