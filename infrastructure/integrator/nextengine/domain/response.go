package nedomain

import "fmt"

const ResultError = "error"

// Envelope traz os campos comuns a todas as respostas. A cada chamada a API pode
// devolver tokens renovados, que precisam ser persistidos.
type Envelope struct {
	Result              string `json:"result"`
	Count               string `json:"count"`
	Message             string `json:"message"`
	Code                string `json:"code"`
	AccessToken         string `json:"access_token"`
	AccessTokenEndDate  string `json:"access_token_end_date"`
	RefreshToken        string `json:"refresh_token"`
	RefreshTokenEndDate string `json:"refresh_token_end_date"`
}

type SearchResponse[T any] struct {
	Envelope
	Data []T `json:"data"`
}

// APIError representa uma resposta com result=error
type APIError struct {
	Endpoint string
	Message  string
	Code     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("NE API erro (%s): %s (código: %s)", e.Endpoint, e.Message, e.Code)
}
