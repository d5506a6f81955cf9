package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps the layered error taxonomy onto HTTP.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "メールアドレスまたはパスワードが正しくありません")
	case errors.Is(err, service.ErrAlreadyApplied):
		writeError(w, http.StatusConflict, "すでに応募済みです")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "権限がありません")
	case errors.Is(err, service.ErrSelfDelete):
		writeError(w, http.StatusBadRequest, "自分自身のアカウントは削除できません")
	case errors.Is(err, repository.ErrDuplicate):
		writeError(w, http.StatusConflict, "すでに登録されています")
	case errors.Is(err, repository.ErrNotOwned):
		writeError(w, http.StatusForbidden, "対象が見つからないか、権限がありません")
	case errors.Is(err, sql.ErrNoRows):
		writeError(w, http.StatusNotFound, "見つかりません")
	default:
		logger.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "サーバーエラーが発生しました")
	}
}

func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathID extracts an integer path variable.
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func queryInt32(r *http.Request, name string) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}
