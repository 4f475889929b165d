package models

// BlogPost is a single article loaded from the markdown content directory.
// Posts are read-only at runtime: dropping a file into the directory creates
// one, removing the file removes it.
type BlogPost struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	ReadingTime string   `json:"readingTime"`
	Featured    bool     `json:"featured"`
	Content     string   `json:"content"`
	ContentHTML string   `json:"contentHtml"`
}
