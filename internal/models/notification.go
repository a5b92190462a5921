package models

// EmailAttachment is a file attached to an outgoing message.
type EmailAttachment struct {
	Filename string
	Content  []byte
}

// EmailMessage is one outgoing transactional email.
type EmailMessage struct {
	To          []string
	Subject     string
	HTML        string
	Attachments []EmailAttachment
}
