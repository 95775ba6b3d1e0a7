package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderOther     Gender = "other"
	GenderPreferNot Gender = "prefer_not"
)

// TrainerApplication is a user's request to become a trainer. ReviewedBy and
// ReviewedAt are set together when the status leaves pending, never earlier.
type TrainerApplication struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"user_id"`
	FullName      string            `json:"full_name,omitempty"`
	Age           *int              `json:"age,omitempty"`
	Gender        Gender            `json:"gender,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	EmailSnapshot string            `json:"email_snapshot,omitempty"`
	Intro         string            `json:"intro,omitempty"`
	PortfolioLink string            `json:"portfolio_link,omitempty"`
	Status        ApplicationStatus `json:"status"`
	ReviewedBy    *int64            `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`

	Certificates []TrainerCertificate `json:"certificates,omitempty"`
}

// TrainerCertificate is owned by its application and deleted with it.
type TrainerCertificate struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id"`
	FilePath      string    `json:"file_path"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// IsTerminal reports whether no further single-review transition exists.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}
