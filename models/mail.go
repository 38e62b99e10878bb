package models

// Mail is a plain-text message handed to the mail dispatcher.
// The JSON form is what the HTTP relay and the broker transports publish.
type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
