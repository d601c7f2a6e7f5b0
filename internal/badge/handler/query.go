package handler

import (
	"net/http"
	"strconv"

	"badgeregistry/internal/badge/models"
	dErrors "badgeregistry/pkg/domain-errors"
)

// parsePage reads from_index and limit. Both are unsigned decimals; a missing
// from_index is 0 and a missing limit means no cap.
func parsePage(r *http.Request) (models.PageRequest, error) {
	q := r.URL.Query()
	var page models.PageRequest

	if raw := q.Get("from_index"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.PageRequest{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "from_index must be an unsigned integer")
		}
		page.FromIndex = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.PageRequest{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "limit must be an unsigned integer")
		}
		page.Limit = &v
	}
	return page, nil
}
