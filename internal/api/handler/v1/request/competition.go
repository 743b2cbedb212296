package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateCompetitionRequest struct {
	Title            string `form:"title"`
	Description      string `form:"description"`
	Category         string `form:"category"`
	Level            string `form:"level"`
	Type             string `form:"type"`
	RegistrationLink string `form:"registrationLink"`
	GuidebookLink    string `form:"guidebookLink"`
	StartDate        string `form:"startDate" format:"YYYY-MM-DD"`
	EndDate          string `form:"endDate" format:"YYYY-MM-DD"`
}

func (req *CreateCompetitionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Level, validation.Required, validation.In("Provincial", "National", "International")),
		validation.Field(&req.Type, validation.Required, validation.In("Individual", "Team")),
		validation.Field(&req.RegistrationLink, is.URL),
		validation.Field(&req.GuidebookLink, is.URL),
		validation.Field(&req.StartDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.EndDate, validation.Required, validation.Date("2006-01-02")),
	)
}

type UpdateCompetitionRequest struct {
	Title            string `form:"title"`
	Description      string `form:"description"`
	Category         string `form:"category"`
	Level            string `form:"level"`
	Type             string `form:"type"`
	RegistrationLink string `form:"registrationLink"`
	GuidebookLink    string `form:"guidebookLink"`
	StartDate        string `form:"startDate" format:"YYYY-MM-DD"`
	EndDate          string `form:"endDate" format:"YYYY-MM-DD"`
}

func (req *UpdateCompetitionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Length(2, 150)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Level, validation.In("Provincial", "National", "International")),
		validation.Field(&req.Type, validation.In("Individual", "Team")),
		validation.Field(&req.RegistrationLink, is.URL),
		validation.Field(&req.GuidebookLink, is.URL),
		validation.Field(&req.StartDate, validation.Date("2006-01-02")),
		validation.Field(&req.EndDate, validation.Date("2006-01-02")),
	)
}

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	OpenSlots   int    `json:"openSlots"`
	EndDate     string `json:"endDate" format:"YYYY-MM-DD"`
}

func (req *CreateTeamRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.OpenSlots, validation.Required, validation.Min(1), validation.Max(20)),
		validation.Field(&req.EndDate, validation.Required, validation.Date("2006-01-02")),
	)
}

type ReimburseRequest struct {
	Name       string `form:"name"`
	BankName   string `form:"bankName"`
	CardNumber string `form:"cardNumber"`
}

func (req *ReimburseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.BankName, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.CardNumber, validation.Required, is.Digit, validation.Length(8, 20)),
	)
}

type UploadResultRequest struct {
	Result string `form:"result"`
}

func (req *UploadResultRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Result, validation.Required, validation.Length(1, 200)),
	)
}
