package models

// Title represents one catalog entry, a movie or a TV show.
type Title struct {
	ShowID      string   `json:"show_id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Director    string   `json:"director"`
	Cast        string   `json:"cast"`
	Country     string   `json:"country"`
	ReleaseYear int      `json:"release_year"`
	Rating      string   `json:"rating"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
}

// TitleRequest is the request body for creating or fully replacing a title.
// The server assigns show_id on create; it is never taken from the body.
type TitleRequest struct {
	Type        string   `json:"type" validate:"required,oneof='Movie' 'TV Show'"`
	Title       string   `json:"title" validate:"required"`
	Director    string   `json:"director"`
	Cast        string   `json:"cast"`
	Country     string   `json:"country"`
	ReleaseYear int      `json:"release_year" validate:"omitempty,gte=1888"`
	Rating      string   `json:"rating"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Genres      []string `json:"genres" validate:"omitempty,unique"`
}

// TitleListParams holds validated pagination/filter parameters.
type TitleListParams struct {
	PageSize   int
	PageNumber int
	Search     string
}

// TitleListResponse is the paginated catalog list response.
type TitleListResponse struct {
	Page         int     `json:"page"`
	PageSize     int     `json:"page_size"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	Data         []Title `json:"data"`
}

// Genres is the closed genre vocabulary. A title may belong to any
// number of these buckets, including none.
var Genres = []string{
	"action",
	"adventure",
	"anime_int_tv",
	"british_int_tv",
	"children",
	"comedies",
	"comedy_drama_int",
	"comedy_int",
	"comedy_romance",
	"crime_tv",
	"documentaries",
	"documentary_int",
	"docuseries",
	"dramas",
	"drama_int",
	"drama_romance",
	"drama_romance_int_tv",
	"family",
	"fantasy",
	"horror",
	"kids_tv",
	"language_tv",
	"musicals",
	"nature_tv",
	"reality_tv",
	"spirituality",
	"action_tv",
	"comedy_tv",
	"drama_tv",
	"talk_show_comedy_tv",
	"thriller_int",
	"thrillers",
}

// ValidGenres indexes Genres for membership checks.
var ValidGenres = func() map[string]bool {
	m := make(map[string]bool, len(Genres))
	for _, g := range Genres {
		m[g] = true
	}
	return m
}()
