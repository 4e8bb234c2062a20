package model

// Article data model. Articles carry no id of their own: the id a client
// sees is the 1-based position of the article in the collection.
type Article struct {
	Title    string `json:"title"`
	FullText string `json:"fullText"`
}

// Seed returns the articles the service starts with.
func Seed() []Article {
	return []Article{
		{Title: "hello article", FullText: "some text here to fill the body"},
		{Title: "another article", FullText: "again here is some text here to fill"},
		{Title: "coventry university ", FullText: "some news about coventry university"},
		{Title: "smart campus", FullText: "smart campus is coming to IVE"},
	}
}
