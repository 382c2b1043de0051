package models

// ApplicationData is a single submitted application form. It is never stored.
type ApplicationData struct {
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Resume       *string `json:"resume,omitempty"`
	CoverLetter  *string `json:"coverLetter,omitempty"`
	LinkedInURL  *string `json:"linkedInUrl,omitempty"`
	PortfolioURL *string `json:"portfolioUrl,omitempty"`
}

// Application form field names
const (
	FieldFullName     = "fullName"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldResume       = "resume"
	FieldCoverLetter  = "coverLetter"
	FieldLinkedInURL  = "linkedInUrl"
	FieldPortfolioURL = "portfolioUrl"
)

type ApplicationResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId,omitempty"`
}
