package models

// CEPAddress is the result of a postal-code lookup, used to prefill the
// residential address step.
type CEPAddress struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}
