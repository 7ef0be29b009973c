package requests

type SearchPatientRequest struct {
	CNP string `json:"cnp" validate:"required,numeric,len=13"`
}

type ResolveMediaRequest struct {
	URL string `json:"url" validate:"required"`
}
