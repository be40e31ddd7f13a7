package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/storefront-backend/internal/platform/apierr"
)

func queryUUID(c *gin.Context, name string) (uuid.UUID, error) {
	return parseUUID(name, c.Query(name))
}

func paramUUID(c *gin.Context, name string) (uuid.UUID, error) {
	return parseUUID(name, c.Param(name))
}

func parseUUID(name, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, apierr.BadRequest(fmt.Errorf("missing %s", name))
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierr.BadRequest(fmt.Errorf("invalid %s: %w", name, err))
	}
	return id, nil
}
