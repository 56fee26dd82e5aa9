package request

// Timestamps are RFC 3339 strings, parsed by the service layer.

type ShowtimeRequest struct {
	MovieID   string  `json:"movie_id" validate:"required,uuid4"`
	Theater   string  `json:"theater" validate:"required,min=1,max=100"`
	StartTime string  `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime   string  `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Price     float64 `json:"price" validate:"gte=0"`
}

type ShowtimeUpdateRequest struct {
	MovieID   *string  `json:"movie_id,omitempty" validate:"omitempty,uuid4"`
	Theater   *string  `json:"theater,omitempty" validate:"omitempty,min=1,max=100"`
	StartTime *string  `json:"start_time,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime   *string  `json:"end_time,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Price     *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}
