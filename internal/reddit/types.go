package reddit

// Listing is the API's paging envelope (kind "Listing").
type Listing struct {
	Kind string      `json:"kind"`
	Data ListingData `json:"data"`
}

// ListingData carries the page of things plus the paging cursor.
type ListingData struct {
	After    string  `json:"after"`
	Children []Thing `json:"children"`
}

// Thing is one element of a listing: kind "t3" for posts, "t1" for
// comments.
type Thing struct {
	Kind string    `json:"kind"`
	Data ThingData `json:"data"`
}

// ThingData holds the fields shared by posts and comments that the
// survey needs. Posts fill Title/SelfText, comments fill Body.
type ThingData struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	SelfText        string  `json:"selftext"`
	Body            string  `json:"body"`
	Score           float64 `json:"score"`
	AuthorFlairText string  `json:"author_flair_text"`
}

// tokenResponse is the OAuth token endpoint reply. On credential
// rejection the endpoint returns 200 with Error set instead of a token.
type tokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   float64 `json:"expires_in"`
	Scope       string  `json:"scope"`
	Error       string  `json:"error"`
}
