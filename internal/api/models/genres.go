package models

// ValidGenres is the fixed set of catalog categories. Genre values on a Book
// must match one of these exactly; the check lives in the service layer
// because "Non-Fiction" and "Science Fiction" cannot be expressed with a
// binding oneof tag.
var ValidGenres = []string{
	"Fiction", "Non-Fiction", "Mystery", "Romance", "Science Fiction",
	"Fantasy", "Thriller", "Biography", "History", "Self-Help",
	"Business", "Technology", "Cooking", "Travel", "Poetry",
}

var validGenreSet = func() map[string]bool {
	set := make(map[string]bool, len(ValidGenres))
	for _, g := range ValidGenres {
		set[g] = true
	}
	return set
}()

func IsValidGenre(genre string) bool {
	return validGenreSet[genre]
}
