package application

import "trainmydog/internal/domain"

type SubmitRequest struct {
	FullName      string        `form:"full_name" json:"full_name"`
	Age           *int          `form:"age" json:"age" binding:"omitempty,gte=18"`
	Gender        domain.Gender `form:"gender" json:"gender" binding:"omitempty,oneof=male female other prefer_not"`
	Phone         string        `form:"phone" json:"phone"`
	EmailSnapshot string        `form:"email_snapshot" json:"email_snapshot" binding:"omitempty,email"`
	Intro         string        `form:"intro" json:"intro"`
	PortfolioLink string        `form:"portfolio_link" json:"portfolio_link" binding:"omitempty,url"`
}

type ReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
}

type BulkReviewRequest struct {
	IDs      []int64 `json:"ids" binding:"required,min=1"`
	Decision string  `json:"decision" binding:"required,oneof=approved rejected"`
}
