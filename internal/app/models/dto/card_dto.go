package dto

// CreateStudentCardRequest carries the issuance request for a student card.
// MasaBerlaku is the caller-supplied expiry date, there is no server default.
type CreateStudentCardRequest struct {
	MasaBerlaku string `json:"masa_berlaku" binding:"required,datetime=2006-01-02"`
}
