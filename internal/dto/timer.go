package dto

type MessageResponseDTO struct {
	Message string `json:"message" example:"Timer started."`
}

type StopResponseDTO struct {
	WorkedMinutes    int        `json:"worked_minutes" example:"25"`
	TotalWorkMinutes int        `json:"total_work_minutes" example:"85"`
	Rewards          RewardsDTO `json:"rewards"`
}

type StatusResponseDTO struct {
	TimerRunning     bool       `json:"timer_running" example:"false"`
	TotalWorkMinutes int        `json:"total_work_minutes" example:"85"`
	Rewards          RewardsDTO `json:"rewards"`
}
