package constants

// Tipe inquiry: pesan umum dari halaman kontak atau pertanyaan properti
const (
	InquiryTypeContact  = "contact"
	InquiryTypeProperty = "property"
)

var InquiryTypes = []string{InquiryTypeContact, InquiryTypeProperty}

// Status triase inquiry
const (
	InquiryStatusNew     = "new"
	InquiryStatusRead    = "read"
	InquiryStatusReplied = "replied"
	InquiryStatusClosed  = "closed"
)

var InquiryStatuses = []string{
	InquiryStatusNew,
	InquiryStatusRead,
	InquiryStatusReplied,
	InquiryStatusClosed,
}
