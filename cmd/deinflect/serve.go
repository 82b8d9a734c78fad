package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/lexeme-tools/deinflect"
)

var serveAddr string

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deinflect_http_requests_total",
		Help: "HTTP requests served, by endpoint.",
	}, []string{"endpoint"})
	candidatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deinflect_candidates_total",
		Help: "Candidate records produced across all queries.",
	})
)

// ---- JSON response types ------------------------------------------------

type candidateJSON struct {
	Text       string   `json:"text"`
	Conditions uint32   `json:"conditions"`
	Trail      []string `json:"trail"`
}

type deinflectResponse struct {
	Text       string          `json:"text"`
	Candidates []candidateJSON `json:"candidates"`
}

type posResponse struct {
	Tag   string `json:"tag"`
	Flags uint32 `json:"flags"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleDeinflect(engine *deinflect.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues("deinflect").Inc()
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}

		candidates := engine.Transform(text)
		candidatesTotal.Add(float64(len(candidates)))

		out := make([]candidateJSON, 0, len(candidates))
		for _, c := range candidates {
			trail := c.Trail
			if trail == nil {
				trail = []string{}
			}
			out = append(out, candidateJSON{
				Text:       c.Text,
				Conditions: uint32(c.Conditions),
				Trail:      trail,
			})
		}
		writeJSON(w, http.StatusOK, deinflectResponse{Text: text, Candidates: out})
	}
}

func handlePOS(engine *deinflect.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues("pos").Inc()
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		tag := r.URL.Query().Get("tag")
		if tag == "" {
			writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, posResponse{
			Tag:   tag,
			Flags: uint32(engine.PartOfSpeechFlags(tag)),
		})
	}
}

func handleLanguages(engine *deinflect.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues("languages").Inc()
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, languagesResponse{Languages: engine.Languages()})
	}
}

// newServeMux wires the API routes for the given engine.
func newServeMux(engine *deinflect.Engine) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/deinflect", handleDeinflect(engine))
	mux.HandleFunc("/api/pos", handlePOS(engine))
	mux.HandleFunc("/api/languages", handleLanguages(engine))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine as a JSON REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		prometheus.MustRegister(requestsTotal, candidatesTotal)

		handler := cors.Default().Handler(newServeMux(engine))
		slog.Info("listening", "addr", serveAddr, "languages", engine.Languages())
		return http.ListenAndServe(serveAddr, handler)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
