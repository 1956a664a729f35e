package models

import "time"

// Schedule request statuses. A request starts pending and is moved to
// approved or rejected by a coordinator or admin.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request types.
const (
	RequestScheduleChange = "schedule_change"
	RequestDayOff         = "day_off"
)

type ScheduleRequest struct {
	ID                  string     `bson:"id" json:"id"`
	EmployeeID          string     `bson:"employee_id" json:"employee_id"`
	RequestedDate       string     `bson:"requested_date" json:"requested_date"`
	RequestType         string     `bson:"request_type" json:"request_type"`
	CurrentSchedule     *string    `bson:"current_schedule" json:"current_schedule"`
	RequestedSchedule   *string    `bson:"requested_schedule" json:"requested_schedule"`
	Reason              string     `bson:"reason" json:"reason"`
	Status              string     `bson:"status" json:"status"`
	CoordinatorResponse *string    `bson:"coordinator_response" json:"coordinator_response"`
	ProcessedBy         *string    `bson:"processed_by" json:"processed_by"`
	ProcessedAt         *time.Time `bson:"processed_at" json:"processed_at"`
	CreatedAt           time.Time  `bson:"created_at" json:"created_at"`
}
