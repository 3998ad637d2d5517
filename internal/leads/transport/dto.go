// Package transport defines the wire contracts of the leads API.
package transport

import (
	"time"

	"leadgen_backend/internal/leads/repository"
)

// CreateLeadRequest is the public intake payload. Only the role is required;
// the landing pages submit whatever the visitor filled in.
type CreateLeadRequest struct {
	Role         string   `json:"role" validate:"required,oneof=seller buyer"`
	FirstName    *string  `json:"first_name" validate:"omitempty,max=120"`
	LastName     *string  `json:"last_name" validate:"omitempty,max=120"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Phone        *string  `json:"phone" validate:"omitempty,max=32"`
	Address      *string  `json:"address" validate:"omitempty,max=300"`
	ZipCode      *string  `json:"zip_code" validate:"omitempty,len=5,numeric"`
	Beds         *int     `json:"beds" validate:"omitempty,min=0,max=50"`
	Baths        *float64 `json:"baths" validate:"omitempty,min=0,max=50"`
	Sqft         *int     `json:"sqft" validate:"omitempty,min=0"`
	PriceMin     *int64   `json:"price_min" validate:"omitempty,min=0"`
	PriceMax     *int64   `json:"price_max" validate:"omitempty,min=0"`
	Timeline     *string  `json:"timeline" validate:"omitempty,oneof=0-3 3-6 6-12 12+"`
	Tags         *string  `json:"tags" validate:"omitempty,max=500"`
	ConsentSMS   *bool    `json:"consent_sms"`
	ConsentEmail *bool    `json:"consent_email"`
}

// UpdateLeadRequest is the admin partial update. Nil fields are untouched.
type UpdateLeadRequest struct {
	Role         *string  `json:"role" validate:"omitempty,oneof=seller buyer"`
	FirstName    *string  `json:"first_name" validate:"omitempty,max=120"`
	LastName     *string  `json:"last_name" validate:"omitempty,max=120"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Phone        *string  `json:"phone" validate:"omitempty,max=32"`
	Address      *string  `json:"address" validate:"omitempty,max=300"`
	ZipCode      *string  `json:"zip_code" validate:"omitempty,len=5,numeric"`
	Beds         *int     `json:"beds" validate:"omitempty,min=0,max=50"`
	Baths        *float64 `json:"baths" validate:"omitempty,min=0,max=50"`
	Sqft         *int     `json:"sqft" validate:"omitempty,min=0"`
	PriceMin     *int64   `json:"price_min" validate:"omitempty,min=0"`
	PriceMax     *int64   `json:"price_max" validate:"omitempty,min=0"`
	Timeline     *string  `json:"timeline" validate:"omitempty,oneof=0-3 3-6 6-12 12+"`
	Tags         *string  `json:"tags" validate:"omitempty,max=500"`
	Stage        *string  `json:"stage" validate:"omitempty,stage"`
	ConsentSMS   *bool    `json:"consent_sms"`
	ConsentEmail *bool    `json:"consent_email"`
}

// ListLeadsRequest carries the admin listing filters as query parameters.
type ListLeadsRequest struct {
	Query *string `form:"q"`
	Role  *string `form:"role" validate:"omitempty,oneof=seller buyer"`
	Stage *string `form:"stage" validate:"omitempty,stage"`
}

type LeadResponse struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	ZipCode      *string   `json:"zip_code"`
	Beds         *int      `json:"beds"`
	Baths        *float64  `json:"baths"`
	Sqft         *int      `json:"sqft"`
	PriceMin     *int64    `json:"price_min"`
	PriceMax     *int64    `json:"price_max"`
	Timeline     *string   `json:"timeline"`
	Tags         *string   `json:"tags"`
	Stage        string    `json:"stage"`
	ConsentSMS   bool      `json:"consent_sms"`
	ConsentEmail bool      `json:"consent_email"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LeadsListResponse struct {
	Leads []LeadResponse `json:"leads"`
	Count int            `json:"count"`
}

func NewLeadResponse(lead repository.Lead) LeadResponse {
	return LeadResponse{
		ID:           lead.ID.String(),
		Role:         lead.Role,
		FirstName:    lead.FirstName,
		LastName:     lead.LastName,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Address:      lead.Address,
		ZipCode:      lead.ZipCode,
		Beds:         lead.Beds,
		Baths:        lead.Baths,
		Sqft:         lead.Sqft,
		PriceMin:     lead.PriceMin,
		PriceMax:     lead.PriceMax,
		Timeline:     lead.Timeline,
		Tags:         lead.Tags,
		Stage:        lead.Stage,
		ConsentSMS:   lead.ConsentSMS,
		ConsentEmail: lead.ConsentEmail,
		Score:        lead.Score,
		CreatedAt:    lead.CreatedAt,
		UpdatedAt:    lead.UpdatedAt,
	}
}

func NewLeadsListResponse(leads []repository.Lead) LeadsListResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		out = append(out, NewLeadResponse(lead))
	}
	return LeadsListResponse{Leads: out, Count: len(out)}
}
