package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/domain"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/query"
)

const defaultPageSize = 10

// parseListSpec maps list query parameters onto a query spec. Malformed
// values fall back to defaults; the engine itself treats absent filters as
// "no effect", so nothing here can fail.
func parseListSpec(c *gin.Context) query.Spec {
	return query.Spec{
		Search:     c.Query("search"),
		Statuses:   multiQuery(c, "status"),
		Categories: multiQuery(c, "position"),
		Scope:      c.Query("job_id"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  query.Order(strings.ToLower(c.Query("sort_order"))),
		Page:       intQuery(c, "page", 0),
		Limit:      intQuery(c, "limit", defaultPageSize),
	}
}

// multiQuery collects repeated parameters and comma-separated values alike.
func multiQuery(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrRoundNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyJobID),
		errors.Is(err, domain.ErrNoRounds),
		errors.Is(err, domain.ErrEmptyRoundName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
