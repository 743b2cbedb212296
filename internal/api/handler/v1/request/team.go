package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type MemberDecisionRequest struct {
	MemberID uint   `json:"memberId"`
	Action   string `json:"action"`
}

func (req *MemberDecisionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MemberID, validation.Required),
		validation.Field(&req.Action, validation.Required, validation.In("approve", "reject")),
	)
}
