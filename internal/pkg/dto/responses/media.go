package responses

type ResolvedMedia struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}
