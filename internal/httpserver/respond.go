// apps/solver/internal/httpserver/respond.go
//
// Response and request codecs shared by all routes.
//   - JSON by default; msgpack when Accept / Content-Type ask for it.
//   - Errors are {"error": code, "message": text}.

package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"
	"github.com/vmihailenco/msgpack/v5"
)

const contentTypeMsgpack = "application/msgpack"

// respond writes v as msgpack when the client accepts it, JSON otherwise.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if wantsMsgpack(r) {
		b, err := msgpack.Marshal(v)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("encode msgpack")
			http.Error(w, `{"error":"encode_failed"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentTypeMsgpack)
		w.WriteHeader(status)
		_, _ = w.Write(b)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": code} plus an optional human-readable detail.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, detail string) {
	body := map[string]string{"error": code}
	if detail != "" {
		body["detail"] = detail
	}
	respond(w, r, status, body)
}

// decode reads a JSON or msgpack request body into v, by Content-Type.
func decode(r *http.Request, v any) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), contentTypeMsgpack) {
		b, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			return err
		}
		return msgpack.Unmarshal(b, v)
	}
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v)
}

func wantsMsgpack(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), contentTypeMsgpack)
}
