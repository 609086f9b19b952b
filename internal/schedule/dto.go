package schedule

type OpenSessionRequest struct {
	ClassID string `json:"class_id" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD or today
}

type ModeRequest struct {
	Mode    string `json:"mode" binding:"required,oneof=default borrowed custom"`
	Weekday string `json:"weekday" binding:"omitempty,weekday"` // required when mode is borrowed
}

type AddPeriodRequest struct {
	SubjectID string `json:"subject_id"`
}

type SetSubjectRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
}

type SubmitResponse struct {
	Session SessionView `json:"session"`
	Created bool        `json:"created"`
}
