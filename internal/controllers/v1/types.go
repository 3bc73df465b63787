package v1

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"20"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"40"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"20"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"311"` // The total number of resources matching the query
}
