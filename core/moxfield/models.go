package moxfield

// boardCard is one entry of a deck board or binder page.
type boardCard struct {
	Quantity int `json:"quantity"`
	Card     struct {
		Name string `json:"name"`
	} `json:"card"`
}

type board struct {
	Count int                  `json:"count"`
	Cards map[string]boardCard `json:"cards"`
}

// deckResponse is the subset of the v3 deck payload used here.
type deckResponse struct {
	Name   string `json:"name"`
	Boards struct {
		Mainboard  board `json:"mainboard"`
		Commanders board `json:"commanders"`
	} `json:"boards"`
}

// binderPage is one page of a trade binder search.
type binderPage struct {
	PageNumber int         `json:"pageNumber"`
	TotalPages int         `json:"totalPages"`
	Data       []boardCard `json:"data"`
}
