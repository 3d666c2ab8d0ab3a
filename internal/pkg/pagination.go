package pkg

import (
	"context"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
	defaultSort     = "id:desc"
)

// reservedParams lists query parameter names used for pagination, sorting,
// and searching, not for structured filtering.
var reservedParams = map[string]bool{
	"page":      true,
	"page_size": true,
	"sort":      true,
	"q":         true,
}

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParsePageRequest extracts pagination, sorting, searching, and filtering
// parameters from query params. The free-text search term comes from "q";
// every remaining non-reserved parameter becomes a structured filter.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	sort := c.DefaultQuery("sort", defaultSort)
	search := strings.TrimSpace(c.Query("q"))

	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}

	return domain.PageRequest{
		Page:     page,
		PageSize: pageSize,
		Sort:     sort,
		Search:   search,
		Filter:   filter,
	}
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET based on the page request.
func Paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (req.Page - 1) * req.PageSize
		return db.Offset(offset).Limit(req.PageSize)
	}
}

// Sort returns a GORM scope that applies ORDER BY based on the page request.
// Only field names present in the allowed list are accepted; others are silently ignored.
// Field names are validated against a strict pattern to prevent SQL injection.
func Sort(req domain.PageRequest, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		parts := strings.SplitN(req.Sort, ":", 2)
		if len(parts) != 2 {
			return db
		}

		field := strings.TrimSpace(parts[0])
		direction := strings.TrimSpace(strings.ToLower(parts[1]))

		if direction != "asc" && direction != "desc" {
			return db
		}

		if !validFieldName.MatchString(field) {
			return db
		}

		if !isAllowed(field, allowed) {
			return db
		}

		return db.Order(field + " " + direction)
	}
}

// Search returns a GORM scope that matches the request's free-text term
// case-insensitively as a substring against any of the given fields
// (OR across fields). An empty term matches everything.
func Search(req domain.PageRequest, fields []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term := strings.TrimSpace(req.Search)
		if term == "" || len(fields) == 0 {
			return db
		}

		pattern := "%" + strings.ToLower(term) + "%"
		conds := make([]string, 0, len(fields))
		args := make([]any, 0, len(fields))
		for _, f := range fields {
			if !validFieldName.MatchString(f) {
				continue
			}
			conds = append(conds, "LOWER("+f+") LIKE ?")
			args = append(args, pattern)
		}
		if len(conds) == 0 {
			return db
		}

		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// Filter returns a GORM scope that applies WHERE conditions based on the page request filters.
// Only filter keys present in the allowed list are applied; others are silently ignored.
// Keys ending with "__like" produce a LIKE '%value%' condition; others use exact match.
func Filter(req domain.PageRequest, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for key, value := range req.Filter {
			// Check for __like suffix.
			if strings.HasSuffix(key, "__like") {
				field := strings.TrimSuffix(key, "__like")
				if !validFieldName.MatchString(field) {
					continue
				}
				if !isAllowed(field, allowed) {
					continue
				}
				db = db.Where(field+" LIKE ?", "%"+value+"%")
			} else {
				if !validFieldName.MatchString(key) {
					continue
				}
				if !isAllowed(key, allowed) {
					continue
				}
				db = db.Where(key+" = ?", filterArg(value))
			}
		}
		return db
	}
}

// ClampPage clamps a requested page into [1, totalPages] and returns the
// effective page together with totalPages. A stale page number (for example
// after the filtered set shrank) lands on the last page instead of an
// empty slice.
func ClampPage(page int, total int64, pageSize int) (int, int) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	return page, totalPages
}

// NewPageResult creates a PageResult with computed TotalPages.
func NewPageResult[T any](items []T, total int64, req domain.PageRequest) *domain.PageResult[T] {
	totalPages := 0
	if req.PageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(req.PageSize)))
	}

	if items == nil {
		items = []T{}
	}

	return &domain.PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}
}

// ListSpec names the fields a model exposes to the generic list engine.
// Scopes carries entity-specific conditions (e.g. date ranges) that are
// AND-combined with the search and structured filters.
type ListSpec struct {
	SearchFields []string
	FilterFields []string
	SortFields   []string
	Scopes       []func(db *gorm.DB) *gorm.DB
}

// ListModel runs the shared list-filter-paginate pipeline for any model:
// free-text search OR-ed across SearchFields, structured filters AND-ed on
// top, count, page clamping, then the sorted page slice. Every entity
// repository delegates its List to this one engine.
func ListModel[T any](ctx context.Context, db *gorm.DB, req domain.PageRequest, spec ListSpec) (*domain.PageResult[T], error) {
	var model T
	scopes := append([]func(db *gorm.DB) *gorm.DB{
		Search(req, spec.SearchFields),
		Filter(req, spec.FilterFields),
	}, spec.Scopes...)
	base := db.WithContext(ctx).Model(&model).Scopes(scopes...)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, MapDBError(err)
	}

	req.Page, _ = ClampPage(req.Page, total, req.PageSize)

	var items []T
	if err := base.Scopes(
		Paginate(req),
		Sort(req, spec.SortFields),
	).Find(&items).Error; err != nil {
		return nil, MapDBError(err)
	}

	return NewPageResult(items, total, req), nil
}

// filterArg converts boolean literals to typed bools so they match columns
// stored as 0/1, and leaves every other value as a string.
func filterArg(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	default:
		return value
	}
}

// isAllowed checks if a field name is in the allowed list.
func isAllowed(field string, allowed []string) bool {
	return slices.Contains(allowed, field)
}
