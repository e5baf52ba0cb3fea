package helper

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validator tunggal untuk semua DTO. Kontraknya first-error-wins:
// caller hanya melihat pesan rule pertama yang dilanggar.
var Validate = newValidator()

// Nomor HP Indonesia: +62 / 62 / 0 diikuti 8-13 digit
var rePhoneID = regexp.MustCompile(`^(\+62|62|0)[0-9]{8,13}$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// phone_id: valid kalau kosong atau cocok pola nomor HP Indonesia
	_ = v.RegisterValidation("phone_id", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return rePhoneID.MatchString(s)
	})

	return v
}

// FirstMessage menerjemahkan error validator ke pesan field pertama yang
// dilanggar. messages di-key dengan "Field.tag"; fallback "Field" lalu
// pesan generik.
func FirstMessage(err error, messages map[string]string) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return "Input tidak valid"
	}
	fe := ve[0]
	if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.StructField()]; ok {
		return msg
	}
	return "Input tidak valid"
}
