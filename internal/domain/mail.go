package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type NewAccountMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type HoursAddedMailData struct {
	FullName        string `json:"fullName"`
	Date            string `json:"date"`
	Period          int32  `json:"period"`
	DurationMinutes int32  `json:"durationMinutes"`
}
