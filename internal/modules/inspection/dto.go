package inspection

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

// CreateItemFlatRequest carries the category in the body instead of the path.
type CreateItemFlatRequest struct {
	CategoryID  int64  `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type CreateOperationPointRequest struct {
	Name            string         `json:"name" binding:"required"`
	DisplayName     string         `json:"display_name"`
	FieldType       string         `json:"field_type" binding:"required"`
	Options         []string       `json:"options"`
	ValidationRules map[string]any `json:"validation_rules"`
	OrderIndex      int            `json:"order_index"`
}

// TemplateItem is one checklist row in the combined service-report template.
type TemplateItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TemplateCategory struct {
	Name  string         `json:"name"`
	Items []TemplateItem `json:"items"`
}

type TemplateOperationPoint struct {
	Name            string         `json:"name"`
	DisplayName     string         `json:"display_name"`
	FieldType       string         `json:"field_type"`
	Options         []string       `json:"options,omitempty"`
	ValidationRules map[string]any `json:"validation_rules,omitempty"`
}

// ServiceReportTemplate is the full blank-form payload the client renders
// before filling a report.
type ServiceReportTemplate struct {
	Categories      map[string]TemplateCategory `json:"inspection_categories"`
	OperationPoints []TemplateOperationPoint    `json:"operation_points"`
	StatusOptions   map[string]string           `json:"status_options"`
}
