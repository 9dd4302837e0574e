package dto

// DefaultPageSize applies when a list request omits size.
const DefaultPageSize = 20

// PageQuery is the paging query string shared by list endpoints.
type PageQuery struct {
	Page uint32 `query:"page"`
	Size uint32 `query:"size" validate:"min=1,max=100"`
}
