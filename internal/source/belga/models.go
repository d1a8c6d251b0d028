package belga

import "coverage_migrator/internal/domain"

// Page is the pagination envelope the feed wraps every listing in.
// Pagination follows Links.Next until it is absent.
type Page struct {
	Data  []domain.NewsObject `json:"data"`
	Links PageLinks           `json:"_links"`
	Meta  PageMeta            `json:"_meta"`
}

type PageLinks struct {
	Next string `json:"next"`
	Self string `json:"self"`
}

type PageMeta struct {
	Total int `json:"total"`
}
