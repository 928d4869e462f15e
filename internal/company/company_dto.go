package company

type UpsertCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`

	GSTNumber string `json:"gst_number"`
	PANNumber string `json:"pan_number"`
	TANNumber string `json:"tan_number"`
	PFCode    string `json:"pf_code"`
	ESICode   string `json:"esi_code"`
	PTCircle  string `json:"pt_circle"`
}

type CompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	GSTNumber string `json:"gst_number"`
	PANNumber string `json:"pan_number"`
	TANNumber string `json:"tan_number"`
	PFCode    string `json:"pf_code"`
	ESICode   string `json:"esi_code"`
	PTCircle  string `json:"pt_circle"`
}
