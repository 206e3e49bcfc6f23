package model

import (
	"time"
)

// StatisticsResponse summarizes the site's content and the editing activity
// recorded in the audit log over a time range.
type StatisticsResponse struct {
	ContentTotals      []ContentTotal   `json:"content_totals"`
	Activity           []ActivityCount  `json:"activity"`
	MostEdited         []EntityActivity `json:"most_edited"`
	TimeRangeStartDate time.Time        `json:"time_range_start_date"`
	TimeRangeEndDate   time.Time        `json:"time_range_end_date"`
}

type ContentTotal struct {
	Entity string `json:"entity"`
	Total  int64  `json:"total"`
}

// ActivityCount is the number of audit entries with one action.
type ActivityCount struct {
	Action string `json:"action"`
	Total  int64  `json:"total"`
}

// EntityActivity ranks an entity type by how often it was changed
type EntityActivity struct {
	Entity string `json:"entity"`
	Total  int64  `json:"total"`
}
