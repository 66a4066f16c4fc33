package v1

import (
	liga_uuid "github.com/ligaoffice/backend/internal/uuid"
)

type URIID struct {
	ID liga_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URISequence struct {
	URIID
	Sequence uint `uri:"sequence" binding:"required"` // The sequence number of the row
}

type URICategory struct {
	URIID
	Category string `uri:"category" binding:"required"` // The expense category
}

type URICategorySequence struct {
	URICategory
	Sequence uint `uri:"sequence" binding:"required"` // The sequence number of the row
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
