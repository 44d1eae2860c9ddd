package models

// RecommendationSlots is the fixed width of every precomputed
// recommendation row. The offline batch job fills the first K slots
// and leaves the rest NULL; readers drop NULLs and keep column order.
const RecommendationSlots = 10

// BrowseGenre selects one of the genre-specific precomputed browse
// tables. The set is closed; unknown keys are rejected before any
// query is built.
type BrowseGenre string

const (
	BrowseGenreAction   BrowseGenre = "action"
	BrowseGenreComedies BrowseGenre = "comedies"
	BrowseGenreDramas   BrowseGenre = "dramas"
)

// browseGenreTables maps each supported genre key to its table.
var browseGenreTables = map[BrowseGenre]string{
	BrowseGenreAction:   "act_collab_browse_rec",
	BrowseGenreComedies: "com_collab_browse_rec",
	BrowseGenreDramas:   "dram_collab_browse_rec",
}

// BrowseGenreTable resolves a genre key to its precomputed table name.
func BrowseGenreTable(g BrowseGenre) (string, bool) {
	t, ok := browseGenreTables[g]
	return t, ok
}

// GeneralBrowseTable is the non-genre collaborative browse table.
const GeneralBrowseTable = "collab_browse_rec"

// DetailCategory selects one of the per-title recommendation tables
// keyed by show_id.
type DetailCategory string

const (
	DetailContent DetailCategory = "content"
	DetailCollab  DetailCategory = "collab"
	DetailAction  DetailCategory = "action"
	DetailComedy  DetailCategory = "comedy"
	DetailDrama   DetailCategory = "drama"
)

var detailCategoryTables = map[DetailCategory]string{
	DetailContent: "content_rec",
	DetailCollab:  "collab_details_rec",
	DetailAction:  "act_collab_details_rec",
	DetailComedy:  "com_collab_details_rec",
	DetailDrama:   "dram_collab_details_rec",
}

// DetailCategoryTable resolves a detail category to its table name.
// The slot values in every table are title display names, not show
// ids; matching them back to catalog rows is the caller's concern.
func DetailCategoryTable(c DetailCategory) (string, bool) {
	t, ok := detailCategoryTables[c]
	return t, ok
}
