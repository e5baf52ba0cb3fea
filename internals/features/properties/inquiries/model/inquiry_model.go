package model

import (
	"time"

	"github.com/google/uuid"
)

type InquiryModel struct {
	InquiryID uuid.UUID `gorm:"column:inquiry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"inquiry_id"`

	InquiryType    string `gorm:"column:inquiry_type;type:varchar(20);not null" json:"inquiry_type"` // 'contact' | 'property'
	InquirySubject string `gorm:"column:inquiry_subject;type:varchar(200)" json:"inquiry_subject"`

	InquiryName    string  `gorm:"column:inquiry_name;type:varchar(100);not null" json:"inquiry_name"`
	InquiryEmail   string  `gorm:"column:inquiry_email;type:varchar(255);not null" json:"inquiry_email"`
	InquiryPhone   *string `gorm:"column:inquiry_phone;type:varchar(20)" json:"inquiry_phone,omitempty"`
	InquiryMessage string  `gorm:"column:inquiry_message;type:text;not null" json:"inquiry_message"`

	InquiryPropertyID *uuid.UUID `gorm:"column:inquiry_property_id;type:uuid;index" json:"inquiry_property_id,omitempty"`

	InquiryStatus string  `gorm:"column:inquiry_status;type:varchar(20);not null;default:'new';index" json:"inquiry_status"`
	InquiryNotes  *string `gorm:"column:inquiry_notes;type:text" json:"inquiry_notes,omitempty"`

	InquiryCreatedAt time.Time  `gorm:"column:inquiry_created_at;autoCreateTime" json:"inquiry_created_at"`
	InquiryReadAt    *time.Time `gorm:"column:inquiry_read_at" json:"inquiry_read_at,omitempty"`
	InquiryRepliedAt *time.Time `gorm:"column:inquiry_replied_at" json:"inquiry_replied_at,omitempty"`
}

func (InquiryModel) TableName() string {
	return "inquiries"
}
