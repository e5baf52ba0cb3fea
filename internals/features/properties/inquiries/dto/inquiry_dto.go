package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"rumahjogja_backend/internals/features/properties/inquiries/model"
	helper "rumahjogja_backend/internals/helpers"
)

/* ============================
   Request DTO
============================ */

type SubmitInquiryRequest struct {
	Type       string `json:"type" validate:"required,oneof=contact property"`
	Subject    string `json:"subject" validate:"omitempty,max=200"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"omitempty,phone_id"`
	Message    string `json:"message" validate:"required,min=10,max=2000"`
	PropertyID string `json:"property_id" validate:"omitempty,uuid"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied closed"`
	Notes  string `json:"notes" validate:"omitempty,max=1000"`
}

var inquiryMessages = map[string]string{
	"Type.required":    "Tipe inquiry diperlukan",
	"Type.oneof":       "Tipe inquiry tidak valid",
	"Subject.max":      "Subjek maksimal 200 karakter",
	"Name.required":    "Nama diperlukan",
	"Name.min":         "Nama minimal 2 karakter",
	"Name.max":         "Nama maksimal 100 karakter",
	"Email.required":   "Email diperlukan",
	"Email.email":      "Email tidak valid",
	"Email.max":        "Email maksimal 255 karakter",
	"Phone.phone_id":   "Nomor telepon tidak valid",
	"Message.required": "Pesan diperlukan",
	"Message.min":      "Pesan minimal 10 karakter",
	"Message.max":      "Pesan maksimal 2000 karakter",
	"PropertyID.uuid":  "Property ID tidak valid",
	"Status.required":  "Status diperlukan",
	"Status.oneof":     "Status inquiry tidak valid",
	"Notes.max":        "Catatan maksimal 1000 karakter",
}

func (r *SubmitInquiryRequest) Validate() error {
	r.Type = strings.TrimSpace(r.Type)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
	r.Subject = strings.TrimSpace(r.Subject)
	r.PropertyID = strings.TrimSpace(r.PropertyID)

	if err := helper.Validate.Struct(r); err != nil {
		return errors.New(helper.FirstMessage(err, inquiryMessages))
	}
	return nil
}

func (r *UpdateInquiryStatusRequest) Validate() error {
	r.Status = strings.TrimSpace(r.Status)
	if err := helper.Validate.Struct(r); err != nil {
		return errors.New(helper.FirstMessage(err, inquiryMessages))
	}
	return nil
}

// ToModel mengisi model baru berstatus 'new'.
func (r *SubmitInquiryRequest) ToModel() model.InquiryModel {
	m := model.InquiryModel{
		InquiryType:    r.Type,
		InquirySubject: r.Subject,
		InquiryName:    r.Name,
		InquiryEmail:   r.Email,
		InquiryMessage: r.Message,
		InquiryStatus:  "new",
	}
	if r.Phone != "" {
		phone := r.Phone
		m.InquiryPhone = &phone
	}
	if r.PropertyID != "" {
		if id, err := uuid.Parse(r.PropertyID); err == nil {
			m.InquiryPropertyID = &id
		}
	}
	return m
}

/* ============================
   Response DTO
============================ */

type InquiryDTO struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Subject    string     `json:"subject,omitempty"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Message    string     `json:"message"`
	PropertyID string     `json:"propertyId,omitempty"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
	RepliedAt  *time.Time `json:"repliedAt,omitempty"`
}

func ToInquiryDTO(m *model.InquiryModel) InquiryDTO {
	d := InquiryDTO{
		ID:        m.InquiryID.String(),
		Type:      m.InquiryType,
		Subject:   m.InquirySubject,
		Name:      m.InquiryName,
		Email:     m.InquiryEmail,
		Message:   m.InquiryMessage,
		Status:    m.InquiryStatus,
		CreatedAt: m.InquiryCreatedAt,
		ReadAt:    m.InquiryReadAt,
		RepliedAt: m.InquiryRepliedAt,
	}
	if m.InquiryPhone != nil {
		d.Phone = *m.InquiryPhone
	}
	if m.InquiryPropertyID != nil {
		d.PropertyID = m.InquiryPropertyID.String()
	}
	if m.InquiryNotes != nil {
		d.Notes = *m.InquiryNotes
	}
	return d
}

func ToInquiryDTOs(ms []model.InquiryModel) []InquiryDTO {
	out := make([]InquiryDTO, 0, len(ms))
	for i := range ms {
		out = append(out, ToInquiryDTO(&ms[i]))
	}
	return out
}
