package server

import (
	"errors"
	"strings"
	"unicode"

	"govportal/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const maxPaginationLimit = 300

// parsePagination extracts limit and offset query parameters with the given
// default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "requestId" -> "request ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// profileID returns the authenticated profile ID placed in locals by
// AuthRequired.
func (s *Server) profileID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("profileID").(uint); ok {
		return id
	}
	return 0
}

// statusForError maps an AppError code onto an HTTP status.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return fiber.StatusNotFound
		case "VALIDATION_ERROR":
			return fiber.StatusBadRequest
		case "UNAUTHORIZED":
			return fiber.StatusForbidden
		case "CONFLICT":
			return fiber.StatusConflict
		}
	}
	return fiber.StatusInternalServerError
}

// respondServiceError writes the right HTTP status for a service-layer error.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}

// authorView is the display subset of a profile attached to listings.
type authorView struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
	StaticID string `json:"static_id"`
}

// authorPlaceholder fills in for deleted or missing author profiles.
var authorPlaceholder = authorView{Nickname: "—", StaticID: "—"}

// resolveAuthors builds the author display map for a batch of creator ids.
func (s *Server) resolveAuthors(c *fiber.Ctx, ids []uint) (map[uint]authorView, error) {
	profiles, err := s.profileRepo.GetByIDs(c.Context(), ids)
	if err != nil {
		return nil, err
	}
	views := make(map[uint]authorView, len(ids))
	for _, id := range ids {
		if p, ok := profiles[id]; ok {
			views[id] = authorView{ID: p.ID, Nickname: p.Nickname, StaticID: p.StaticID}
		} else {
			views[id] = authorPlaceholder
		}
	}
	return views, nil
}
