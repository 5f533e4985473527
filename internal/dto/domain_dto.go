package dto

type DomainResponse struct {
	Id            string `json:"id"`
	DisplayName   string `json:"display_name"`
	QuestionCount int    `json:"question_count"`
}
