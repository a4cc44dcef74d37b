package expertnote

type CreateNoteRequest struct {
	StudentID    uint   `json:"studentId" binding:"required"`
	TestResultID *uint  `json:"testResultId"`
	Note         string `json:"note" binding:"required"`
	NoteType     string `json:"noteType"`
}
