package transaction

type UpdateNoteRequest struct {
	Note string `json:"note"`
}
