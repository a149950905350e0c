package models

// Repository is the subset of a GitHub repository listing used to prefill a project's GitHub URL
type Repository struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
}
