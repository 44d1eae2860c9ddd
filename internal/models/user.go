package models

// User is a catalog-side viewer profile. These rows are loaded by an
// external import and are read-only here.
type User struct {
	UserID        int      `json:"user_id"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Zip           int      `json:"zip"`
	Subscriptions []string `json:"subscriptions"`
}

// StreamingServices is the closed set of subscription labels a user
// profile may carry.
var StreamingServices = []string{
	"netflix",
	"amazon_prime",
	"disney_plus",
	"paramount_plus",
	"max",
	"hulu",
	"apple_tv_plus",
	"peacock",
}
