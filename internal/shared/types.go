package shared

// Task types cho asynq
// Convention: "<domain>:<action>"
const (
	TypeSendContactNotification = "contact:send_notification"
	TypeDailyContactSummary     = "contact:daily_summary"
	TypeSendWelcomeEmail        = "newsletter:welcome_email"
)

// Queue names
const (
	QueueDefault = "default"
	QueueMail    = "mail"
)

// ContactNotificationPayload là data cho job thông báo contact mới
type ContactNotificationPayload struct {
	ContactID    string `json:"contactId"`
	FullName     string `json:"fullName"`
	EmailAddress string `json:"emailAddress"`
	MobileNumber string `json:"mobileNumber"`
	City         string `json:"city"`
}

// WelcomeEmailPayload là data cho job gửi email chào mừng newsletter
type WelcomeEmailPayload struct {
	EmailAddress string `json:"emailAddress"`
}

// DailyContactSummaryPayload - scheduler enqueue hằng ngày, không cần tham số
type DailyContactSummaryPayload struct{}
