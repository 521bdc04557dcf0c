package memory

import (
	"fmt"
	"sort"
	"strings"

	"tool-rental-checkout/internal/domain"
	"tool-rental-checkout/internal/repository"
)

type toolRepository struct {
	byCode map[string]domain.Tool
}

func NewToolRepository(tools []domain.Tool) (repository.ToolRepository, error) {
	byCode := make(map[string]domain.Tool, len(tools))
	for _, t := range tools {
		if strings.TrimSpace(t.Code) == "" {
			return nil, fmt.Errorf("tool code is required")
		}
		if t.Category == "" {
			return nil, fmt.Errorf("tool %s: category is required", t.Code)
		}
		if _, dup := byCode[t.Code]; dup {
			return nil, fmt.Errorf("duplicate tool code %s", t.Code)
		}
		byCode[t.Code] = t
	}
	return &toolRepository{byCode: byCode}, nil
}

func (r *toolRepository) GetByCode(code string) (*domain.Tool, error) {
	t, ok := r.byCode[code]
	if !ok {
		return nil, fmt.Errorf("tool %q: %w", code, repository.ErrNotFound)
	}
	return &t, nil
}

// List returns the tools sorted by code
func (r *toolRepository) List() []domain.Tool {
	tools := make([]domain.Tool, 0, len(r.byCode))
	for _, t := range r.byCode {
		tools = append(tools, t)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Code < tools[j].Code })
	return tools
}
