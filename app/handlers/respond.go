package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/clothplek/catalog-api/app/apperrors"
	"github.com/unrolled/render"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, rnd *render.Render, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

// writeReadError maps service failures on read paths: not-found to 404,
// anything else to 500.
func writeReadError(rnd *render.Render, w http.ResponseWriter, err error) {
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		_ = rnd.JSON(w, http.StatusNotFound, map[string]string{"error": notFound.Error()})
		return
	}
	log.Printf("handler: %v", err)
	_ = rnd.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// writeWriteError maps service failures on write paths: not-found to 404,
// everything else to 400. Constraint violations (duplicate slug/key, dangling
// category_id) are not pre-validated, they arrive here from the store.
func writeWriteError(rnd *render.Render, w http.ResponseWriter, err error) {
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		_ = rnd.JSON(w, http.StatusNotFound, map[string]string{"error": notFound.Error()})
		return
	}
	log.Printf("handler: %v", err)
	_ = rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}
