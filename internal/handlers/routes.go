package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func RegisterRoutes(r *mux.Router, h *WebsiteHandler) {
	r.HandleFunc("/", h.HandleWebsite).Methods("GET")
	r.HandleFunc("/health", h.HandleHealth).Methods("GET")
	r.HandleFunc("/favicon.svg", h.HandleFavicon).Methods("GET")
	r.HandleFunc("/admin/generate", h.HandleGenerate).Methods("POST")
	r.NotFoundHandler = http.HandlerFunc(h.HandleNotFound)
}
